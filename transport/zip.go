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
package transport

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"

	"github.com/penny-vault/pvgrid/data"
)

var zipMagic = []byte("PK")

func isZip(body []byte) bool {
	return bytes.HasPrefix(body, zipMagic)
}

// unzip returns the contents of every file in the archive, in archive order
func unzip(body []byte) ([][]byte, error) {
	archive, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid zip archive: %w", data.ErrTransport, err)
	}

	members := make([][]byte, 0, len(archive.File))
	for _, file := range archive.File {
		if file.FileInfo().IsDir() {
			continue
		}

		content, err := readMember(file)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s from zip archive: %w", data.ErrTransport, file.Name, err)
		}
		members = append(members, content)
	}

	return members, nil
}

func readMember(file *zip.File) ([]byte, error) {
	fh, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	return io.ReadAll(fh)
}
