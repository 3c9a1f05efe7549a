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

package configuration

// Configurations lists the default file of every binary.
func Configurations() map[string]interface{} {
	cfgs := make(map[string]interface{})
	cfgs[ConfigFilePath] = Default()
	cfgs[MigrateConfigFilePath] = Migrate{}.Default()

	return cfgs
}
