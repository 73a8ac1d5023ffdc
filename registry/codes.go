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

import (
	"fmt"
	"strings"
	"sync"

	"github.com/penny-vault/pvgrid/data"
)

// Family names accepted by Codes.Family
const (
	FamilyPsr      = "psr"
	FamilyProcess  = "process"
	FamilyDocument = "document"
	FamilyBusiness = "business"
	FamilyContract = "contract"
)

// Codes bundles every registry the client needs
type Codes struct {
	Areas         *AreaRegistry
	PsrTypes      *Registry
	ProcessTypes  *Registry
	DocumentTypes *Registry
	BusinessTypes *Registry
	ContractTypes *Registry
}

var (
	loadOnce sync.Once
	loaded   *Codes
)

// Load returns the compiled-in registries. They are built on first use and shared after that.
func Load() *Codes {
	loadOnce.Do(func() {
		loaded = &Codes{
			Areas:         NewAreas(areaTable),
			PsrTypes:      New("PSR type", psrTable),
			ProcessTypes:  New("process type", processTable),
			DocumentTypes: New("document type", documentTable),
			BusinessTypes: New("business type", businessTable),
			ContractTypes: New("contract type", contractTable),
		}
	})

	return loaded
}

// Families lists the code family names in display order
func Families() []string {
	return []string{FamilyPsr, FamilyProcess, FamilyDocument, FamilyBusiness, FamilyContract}
}

// Family returns the registry for a family name such as "psr" or "document"
func (codes *Codes) Family(name string) (*Registry, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FamilyPsr, "psr_type", "psr-type":
		return codes.PsrTypes, nil
	case FamilyProcess, "process_type", "process-type":
		return codes.ProcessTypes, nil
	case FamilyDocument, "document_type", "document-type":
		return codes.DocumentTypes, nil
	case FamilyBusiness, "business_type", "business-type":
		return codes.BusinessTypes, nil
	case FamilyContract, "contract_type", "contract-type":
		return codes.ContractTypes, nil
	default:
		return nil, fmt.Errorf("%w: unknown code family %q; available: areas, %s", data.ErrInvalidParameter, name, strings.Join(Families(), ", "))
	}
}
