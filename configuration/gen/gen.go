//
// Copyright 2025 Frontier3 Tech
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package main

import (
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	yaml "gopkg.in/yaml.v2"

	"github.com/frontier3tech/detfl/configuration"
)

func main() {
	for filePath, cfg := range configuration.Configurations() {
		out, err := yaml.Marshal(cfg)
		if err != nil {
			logrus.Error(errors.Wrapf(err, "failed to marshal %s", filePath))
			return
		}
		err = ioutil.WriteFile(filePath, out, 0644)
		if err != nil {
			logrus.Error(errors.Wrapf(err, "failed to write config file"))
			return
		}
		fmt.Println(filePath)
	}
}
