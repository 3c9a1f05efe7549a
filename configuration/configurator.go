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

import (
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const (
	EnvPrefix  = "detfl"
	ConfigType = "yaml"

	ConfigName     = "detfl"
	ConfigFilePath = ConfigName + "." + ConfigType

	MigrateConfigName     = "migrate"
	MigrateConfigFilePath = MigrateConfigName + "." + ConfigType
)

// Load reads detfl.yaml, or path when it is not empty, and falls back to the
// defaults when the file is missing or broken.
func Load(log logrus.FieldLogger, path string) *Configuration {
	printWorkingDir(log)
	actual := Default()
	if !load(log, ConfigName, path, actual) {
		actual = Default()
	}
	printConfig(log, actual)
	return actual
}

func LoadMigrate(log logrus.FieldLogger, path string) *Migrate {
	printWorkingDir(log)
	actual := Migrate{}.Default()
	if !load(log, MigrateConfigName, path, actual) {
		actual = Migrate{}.Default()
	}
	printConfig(log, actual)
	return actual
}

func load(log logrus.FieldLogger, name, path string, actual interface{}) bool {
	v := viper.New()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix(EnvPrefix)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(name)
		v.SetConfigType(ConfigType)
		v.AddConfigPath(".")
		v.AddConfigPath(".artifacts")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warnf("config file not found (file=%v). Default configuration is used", name+"."+ConfigType)
		} else {
			log.Error(errors.Wrapf(err, "failed to load config. Default configuration is used"))
		}
		return false
	}

	err := v.Unmarshal(actual, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		stringToDecimalHook(),
	)))
	if err != nil {
		log.Error(errors.Wrapf(err, "failed to unmarshal config file into configuration structure. Default configuration is used"))
		return false
	}
	return true
}

func stringToDecimalHook() mapstructure.DecodeHookFuncType {
	decimalType := reflect.TypeOf(decimal.Decimal{})
	return func(from, to reflect.Type, data interface{}) (interface{}, error) {
		if to != decimalType {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			return decimal.NewFromString(v)
		case float64:
			return decimal.NewFromFloat(v), nil
		case int:
			return decimal.NewFromInt(int64(v)), nil
		default:
			return data, nil
		}
	}
}

func printWorkingDir(log logrus.FieldLogger) {
	wd, _ := os.Getwd()
	log.Infof("Working dir: %s", wd)
}

func printConfig(log logrus.FieldLogger, c interface{}) {
	out, err := yaml.Marshal(cleanSecrets(c))
	if err != nil {
		log.Error(errors.Wrapf(err, "failed to marshal config structure"))
		return
	}
	log.Infof("Loaded configuration: \n %s \n", string(out))
}

func cleanSecrets(c interface{}) interface{} {
	switch cfg := c.(type) {
	case *Configuration:
		cc := *cfg
		cc.DB.URL = replacePassword(cc.DB.URL)
		if cc.Wallet.Key != "" {
			cc.Wallet.Key = masked
		}
		return &cc
	case *Migrate:
		cc := *cfg
		cc.DB.URL = replacePassword(cc.DB.URL)
		return &cc
	default:
		return c
	}
}

const masked = "<masked>"

var passwordRe = regexp.MustCompile(`^(?P<start>.*)(:(?P<pass>[^@\/:?]+)@)(?P<end>.*)$`)

func replacePassword(url string) string {
	result := []byte{}
	if passwordRe.MatchString(url) {
		for _, submatches := range passwordRe.FindAllStringSubmatchIndex(url, -1) {
			result = passwordRe.ExpandString(result, `$start:`+masked+`@$end`, url, submatches)
		}
		return string(result)
	}
	return url
}
