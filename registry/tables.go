// Copyright 2024
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package registry

var areaTable = []AreaEntry{
	{Key: "AL", EIC: "10YAL-KESH-----5", Name: "Albania", Timezone: "Europe/Tirane"},
	{Key: "AT", EIC: "10YAT-APG------L", Name: "Austria", Timezone: "Europe/Vienna"},
	{Key: "BA", EIC: "10YBA-JPCC-----D", Name: "Bosnia and Herzegovina", Timezone: "Europe/Sarajevo"},
	{Key: "BE", EIC: "10YBE----------2", Name: "Belgium", Timezone: "Europe/Brussels"},
	{Key: "BG", EIC: "10YCA-BULGARIA-R", Name: "Bulgaria", Timezone: "Europe/Sofia"},
	{Key: "CH", EIC: "10YCH-SWISSGRIDZ", Name: "Switzerland", Timezone: "Europe/Zurich"},
	{Key: "CZ", EIC: "10YCZ-CEPS-----N", Name: "Czech Republic", Timezone: "Europe/Prague"},
	{Key: "DE", EIC: "10Y1001A1001A83F", Name: "Germany", Timezone: "Europe/Berlin"},
	{Key: "DE_LU", EIC: "10Y1001A1001A82H", Name: "Germany/Luxembourg", Timezone: "Europe/Berlin"},
	{Key: "DE_AT_LU", EIC: "10Y1001A1001A63L", Name: "Germany/Austria/Luxembourg", Timezone: "Europe/Berlin"},
	{Key: "DK", EIC: "10Y1001A1001A65H", Name: "Denmark", Timezone: "Europe/Copenhagen"},
	{Key: "DK_1", EIC: "10YDK-1--------W", Name: "Denmark (West)", Timezone: "Europe/Copenhagen"},
	{Key: "DK_2", EIC: "10YDK-2--------M", Name: "Denmark (East)", Timezone: "Europe/Copenhagen"},
	{Key: "EE", EIC: "10Y1001A1001A39I", Name: "Estonia", Timezone: "Europe/Tallinn"},
	{Key: "ES", EIC: "10YES-REE------0", Name: "Spain", Timezone: "Europe/Madrid"},
	{Key: "FI", EIC: "10YFI-1--------U", Name: "Finland", Timezone: "Europe/Helsinki"},
	{Key: "FR", EIC: "10YFR-RTE------C", Name: "France", Timezone: "Europe/Paris"},
	{Key: "GB", EIC: "10YGB----------A", Name: "Great Britain", Timezone: "Europe/London"},
	{Key: "GR", EIC: "10YGR-HTSO-----Y", Name: "Greece", Timezone: "Europe/Athens"},
	{Key: "HR", EIC: "10YHR-HEP------M", Name: "Croatia", Timezone: "Europe/Zagreb"},
	{Key: "HU", EIC: "10YHU-MAVIR----U", Name: "Hungary", Timezone: "Europe/Budapest"},
	{Key: "IE", EIC: "10YIE-1001A00010", Name: "Ireland", Timezone: "Europe/Dublin"},
	{Key: "IE_SEM", EIC: "10Y1001A1001A59C", Name: "Ireland (SEM)", Timezone: "Europe/Dublin"},
	{Key: "IT", EIC: "10YIT-GRTN-----B", Name: "Italy", Timezone: "Europe/Rome"},
	{Key: "IT_NORTH", EIC: "10Y1001A1001A73I", Name: "Italy (North)", Timezone: "Europe/Rome"},
	{Key: "IT_CNOR", EIC: "10Y1001A1001A70O", Name: "Italy (Central North)", Timezone: "Europe/Rome"},
	{Key: "IT_CSUD", EIC: "10Y1001A1001A71M", Name: "Italy (Central South)", Timezone: "Europe/Rome"},
	{Key: "IT_SUD", EIC: "10Y1001A1001A788", Name: "Italy (South)", Timezone: "Europe/Rome"},
	{Key: "IT_SICI", EIC: "10Y1001A1001A74G", Name: "Italy (Sicily)", Timezone: "Europe/Rome"},
	{Key: "IT_SARD", EIC: "10Y1001A1001A75E", Name: "Italy (Sardinia)", Timezone: "Europe/Rome"},
	{Key: "LT", EIC: "10YLT-1001A0008Q", Name: "Lithuania", Timezone: "Europe/Vilnius"},
	{Key: "LU", EIC: "10YLU-CEGEDEL-NQ", Name: "Luxembourg", Timezone: "Europe/Luxembourg"},
	{Key: "LV", EIC: "10YLV-1001A00074", Name: "Latvia", Timezone: "Europe/Riga"},
	{Key: "ME", EIC: "10YCS-CG-TSO---S", Name: "Montenegro", Timezone: "Europe/Podgorica"},
	{Key: "MK", EIC: "10YMK-MEPSO----8", Name: "North Macedonia", Timezone: "Europe/Skopje"},
	{Key: "MT", EIC: "10Y1001A1001A93C", Name: "Malta", Timezone: "Europe/Malta"},
	{Key: "NL", EIC: "10YNL----------L", Name: "Netherlands", Timezone: "Europe/Amsterdam"},
	{Key: "NO", EIC: "10YNO-0--------C", Name: "Norway", Timezone: "Europe/Oslo"},
	{Key: "NO_1", EIC: "10YNO-1--------2", Name: "Norway (South-East)", Timezone: "Europe/Oslo"},
	{Key: "NO_2", EIC: "10YNO-2--------T", Name: "Norway (South-West)", Timezone: "Europe/Oslo"},
	{Key: "NO_3", EIC: "10YNO-3--------J", Name: "Norway (Central)", Timezone: "Europe/Oslo"},
	{Key: "NO_4", EIC: "10YNO-4--------9", Name: "Norway (North)", Timezone: "Europe/Oslo"},
	{Key: "NO_5", EIC: "10Y1001A1001A48H", Name: "Norway (West)", Timezone: "Europe/Oslo"},
	{Key: "PL", EIC: "10YPL-AREA-----S", Name: "Poland", Timezone: "Europe/Warsaw"},
	{Key: "PT", EIC: "10YPT-REN------W", Name: "Portugal", Timezone: "Europe/Lisbon"},
	{Key: "RO", EIC: "10YRO-TEL------P", Name: "Romania", Timezone: "Europe/Bucharest"},
	{Key: "RS", EIC: "10YCS-SERBIATSOV", Name: "Serbia", Timezone: "Europe/Belgrade"},
	{Key: "SE", EIC: "10YSE-1--------K", Name: "Sweden", Timezone: "Europe/Stockholm"},
	{Key: "SE_1", EIC: "10Y1001A1001A44P", Name: "Sweden (Luleå)", Timezone: "Europe/Stockholm"},
	{Key: "SE_2", EIC: "10Y1001A1001A45N", Name: "Sweden (Sundsvall)", Timezone: "Europe/Stockholm"},
	{Key: "SE_3", EIC: "10Y1001A1001A46L", Name: "Sweden (Stockholm)", Timezone: "Europe/Stockholm"},
	{Key: "SE_4", EIC: "10Y1001A1001A47J", Name: "Sweden (Malmö)", Timezone: "Europe/Stockholm"},
	{Key: "SI", EIC: "10YSI-ELES-----O", Name: "Slovenia", Timezone: "Europe/Ljubljana"},
	{Key: "SK", EIC: "10YSK-SEPS-----K", Name: "Slovakia", Timezone: "Europe/Bratislava"},
	{Key: "TR", EIC: "10YTR-TEIAS----W", Name: "Turkey", Timezone: "Europe/Istanbul"},
	{Key: "UA", EIC: "10Y1001C--00003F", Name: "Ukraine", Timezone: "Europe/Kiev"},
	{Key: "UK", EIC: "10Y1001A1001A92E", Name: "United Kingdom", Timezone: "Europe/London"},
	{Key: "XK", EIC: "10Y1001C--00100H", Name: "Kosovo", Timezone: "Europe/Belgrade"},
}

var psrTable = []CodeEntry{
	{Code: "A03", Name: "Mixed", Slug: "mixed", Description: "Unit that can produce and consume"},
	{Code: "A04", Name: "Generation", Slug: "generation", Description: "Generation resource, unspecified fuel"},
	{Code: "A05", Name: "Load", Slug: "load", Description: "Consumption resource"},
	{Code: "B01", Name: "Biomass", Slug: "biomass", Description: "Solid, liquid and gaseous biomass"},
	{Code: "B02", Name: "Fossil Brown coal/Lignite", Slug: "lignite", Description: "Brown coal and lignite fired units"},
	{Code: "B03", Name: "Fossil Coal-derived gas", Slug: "coal_gas", Description: "Coal-derived gas fired units"},
	{Code: "B04", Name: "Fossil Gas", Slug: "gas", Description: "Natural gas fired units"},
	{Code: "B05", Name: "Fossil Hard coal", Slug: "hard_coal", Description: "Hard coal fired units"},
	{Code: "B06", Name: "Fossil Oil", Slug: "oil", Description: "Oil fired units"},
	{Code: "B07", Name: "Fossil Oil shale", Slug: "oil_shale", Description: "Oil shale fired units"},
	{Code: "B08", Name: "Fossil Peat", Slug: "peat", Description: "Peat fired units"},
	{Code: "B09", Name: "Geothermal", Slug: "geothermal", Description: "Geothermal units"},
	{Code: "B10", Name: "Hydro Pumped Storage", Slug: "hydro_pumped_storage", Description: "Pumped storage hydro, net of pumping"},
	{Code: "B11", Name: "Hydro Run-of-river and poundage", Slug: "hydro_run_of_river", Description: "Run-of-river hydro"},
	{Code: "B12", Name: "Hydro Water Reservoir", Slug: "hydro_reservoir", Description: "Reservoir hydro"},
	{Code: "B13", Name: "Marine", Slug: "marine", Description: "Tidal and wave units"},
	{Code: "B14", Name: "Nuclear", Slug: "nuclear", Description: "Nuclear units"},
	{Code: "B15", Name: "Other renewable", Slug: "other_renewable", Description: "Renewables not listed elsewhere"},
	{Code: "B16", Name: "Solar", Slug: "solar", Description: "Photovoltaic and solar thermal"},
	{Code: "B17", Name: "Waste", Slug: "waste", Description: "Waste incineration"},
	{Code: "B18", Name: "Wind Offshore", Slug: "wind_offshore", Description: "Offshore wind farms"},
	{Code: "B19", Name: "Wind Onshore", Slug: "wind_onshore", Description: "Onshore wind farms"},
	{Code: "B20", Name: "Other", Slug: "other", Description: "Generation not listed elsewhere"},
	{Code: "B25", Name: "Energy storage", Slug: "energy_storage", Description: "Batteries and other non-hydro storage"},
}

var processTable = []CodeEntry{
	{Code: "A01", Name: "Day ahead", Slug: "day_ahead", Description: "Information provided the day before"},
	{Code: "A02", Name: "Intra day incremental", Slug: "intraday_incremental", Description: "Incremental intraday information"},
	{Code: "A16", Name: "Realised", Slug: "realised", Description: "Measured or estimated after the fact"},
	{Code: "A18", Name: "Intraday total", Slug: "intraday_total", Description: "Total intraday information"},
	{Code: "A31", Name: "Week ahead", Slug: "week_ahead", Description: "Information provided a week in advance"},
	{Code: "A32", Name: "Month ahead", Slug: "month_ahead", Description: "Information provided a month in advance"},
	{Code: "A33", Name: "Year ahead", Slug: "year_ahead", Description: "Information provided a year in advance"},
	{Code: "A39", Name: "Synchronisation process", Description: "Synchronous area frequency process"},
	{Code: "A40", Name: "Intraday process", Description: "Intraday capacity calculation"},
	{Code: "A46", Name: "Replacement reserve", Slug: "rr", Description: "Replacement reserve process"},
	{Code: "A47", Name: "Manual frequency restoration reserve", Slug: "mfrr", Description: "mFRR process"},
	{Code: "A51", Name: "Automatic frequency restoration reserve", Slug: "afrr", Description: "aFRR process"},
	{Code: "A52", Name: "Frequency containment reserve", Slug: "fcr", Description: "FCR process"},
	{Code: "A56", Name: "Frequency restoration reserve", Slug: "frr", Description: "FRR process"},
}

var documentTable = []CodeEntry{
	{Code: "A09", Name: "Finalised schedule", Slug: "scheduled_exchanges", Description: "Scheduled commercial exchanges"},
	{Code: "A11", Name: "Aggregated energy data report", Slug: "physical_crossborder_flows", Description: "Physical cross-border flows"},
	{Code: "A25", Name: "Allocation result document", Description: "Explicit capacity allocation results"},
	{Code: "A26", Name: "Capacity document", Description: "Capacity allocation and nomination"},
	{Code: "A31", Name: "Agreed capacity", Description: "Agreed cross-border capacity"},
	{Code: "A44", Name: "Price Document", Slug: "day_ahead_prices", Description: "Day-ahead market prices"},
	{Code: "A61", Name: "Estimated Net Transfer Capacity", Slug: "net_transfer_capacity", Description: "Forecasted net transfer capacity"},
	{Code: "A63", Name: "Redispatch notice", Description: "Redispatching actions"},
	{Code: "A65", Name: "System total load", Slug: "system_total_load", Description: "Actual and forecast total load"},
	{Code: "A68", Name: "Installed generation per type", Slug: "installed_capacity", Description: "Installed generation capacity aggregated per type"},
	{Code: "A69", Name: "Wind and solar forecast", Slug: "generation_forecast_wind_solar", Description: "Day-ahead wind and solar generation forecast"},
	{Code: "A71", Name: "Generation forecast", Slug: "generation_forecast", Description: "Day-ahead aggregated generation forecast"},
	{Code: "A72", Name: "Reservoir filling information", Slug: "reservoir_filling", Description: "Weekly stored energy in water reservoirs"},
	{Code: "A73", Name: "Actual generation", Slug: "actual_generation_per_plant", Description: "Actual generation per production unit"},
	{Code: "A75", Name: "Actual generation per type", Slug: "actual_generation_per_type", Description: "Actual generation aggregated per type"},
	{Code: "A77", Name: "Production unavailability", Slug: "production_unavailability", Description: "Unavailability of production units"},
	{Code: "A78", Name: "Transmission unavailability", Slug: "transmission_unavailability", Description: "Unavailability of transmission infrastructure"},
	{Code: "A80", Name: "Generation unavailability", Slug: "generation_unavailability", Description: "Unavailability of generation units"},
	{Code: "A81", Name: "Contracted reserves", Slug: "contracted_reserves", Description: "Amount of contracted balancing reserves"},
	{Code: "A84", Name: "Activated balancing prices", Slug: "activated_balancing_energy_prices", Description: "Prices of activated balancing energy"},
	{Code: "A85", Name: "Imbalance prices", Slug: "imbalance_prices", Description: "Imbalance settlement prices"},
	{Code: "A86", Name: "Imbalance volume", Slug: "imbalance_volumes", Description: "Total imbalance volumes"},
	{Code: "A89", Name: "Contracted reserve prices", Slug: "contracted_reserve_prices", Description: "Prices of contracted balancing reserves"},
}

var businessTable = []CodeEntry{
	{Code: "A01", Name: "Production", Description: "Produced energy"},
	{Code: "A04", Name: "Consumption", Description: "Consumed energy"},
	{Code: "A14", Name: "Aggregated energy data", Description: "Aggregated metered energy"},
	{Code: "A19", Name: "Balance energy deviation", Description: "Imbalance between scheduled and actual energy"},
	{Code: "A25", Name: "General capacity information", Description: "Capacity information not further specified"},
	{Code: "A26", Name: "Available transfer capacity", Slug: "atc", Description: "Capacity available for further allocation"},
	{Code: "A29", Name: "Already allocated capacity", Slug: "aac", Description: "Capacity allocated in previous auctions"},
	{Code: "A31", Name: "Offered capacity", Description: "Capacity offered for allocation"},
	{Code: "A33", Name: "Installed generation", Description: "Installed generation capacity"},
	{Code: "A37", Name: "Installed capacity", Description: "Installed capacity of a resource"},
	{Code: "A43", Name: "Requested capacity", Description: "Capacity requested in an auction"},
	{Code: "A53", Name: "Planned maintenance", Description: "Scheduled unavailability"},
	{Code: "A54", Name: "Unplanned outage", Description: "Forced unavailability"},
	{Code: "A85", Name: "Internal redispatch", Description: "Redispatch within a control area"},
	{Code: "A93", Name: "Wind generation", Description: "Generation from wind"},
	{Code: "A94", Name: "Solar generation", Description: "Generation from solar"},
	{Code: "A95", Name: "Frequency containment reserve", Slug: "fcr", Description: "FCR capacity"},
	{Code: "A96", Name: "Automatic frequency restoration reserve", Slug: "afrr", Description: "aFRR capacity"},
	{Code: "A97", Name: "Manual frequency restoration reserve", Slug: "mfrr", Description: "mFRR capacity"},
	{Code: "A98", Name: "Replacement reserve", Slug: "rr", Description: "RR capacity"},
	{Code: "B01", Name: "Interconnector network evolution", Description: "Changes to interconnector capacity"},
	{Code: "B10", Name: "Congestion income", Description: "Income from congestion rents"},
	{Code: "B11", Name: "Production unit", Description: "Data related to a production unit"},
	{Code: "B33", Name: "Area control error", Slug: "ace", Description: "Deviation of a control area from its schedule"},
	{Code: "B95", Name: "Procured capacity", Description: "Balancing capacity procured"},
	{Code: "C22", Name: "Shared balancing reserve capacity", Description: "Reserve capacity shared between areas"},
	{Code: "C24", Name: "Actual reserve capacity", Description: "Reserve capacity actually available"},
}

var contractTable = []CodeEntry{
	{Code: "A01", Name: "Daily", Description: "Contract for one day"},
	{Code: "A02", Name: "Weekly", Description: "Contract for one week"},
	{Code: "A03", Name: "Monthly", Description: "Contract for one month"},
	{Code: "A04", Name: "Yearly", Description: "Contract for one year"},
	{Code: "A05", Name: "Total", Description: "Aggregate of all contract types"},
	{Code: "A06", Name: "Long term", Description: "Contract longer than one year"},
	{Code: "A07", Name: "Intraday", Description: "Contract within the day"},
	{Code: "A13", Name: "Hourly", Description: "Contract for one hour"},
}
