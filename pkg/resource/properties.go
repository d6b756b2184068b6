package resource

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

const defaultPropertiesPath = "configs/application.yml"

var (
	properties = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// Path returns the properties file location, honouring PROPERTIES_FILE_PATH.
func Path() string {
	if value, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok {
		return value
	}
	return defaultPropertiesPath
}

// Init loads application properties from a YAML file and resolves ${ENV:default} placeholders.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("fail to read properties: %w", err)
	}

	resolved := viper.New()
	for key, value := range flatten("", v.AllSettings()) {
		resolved.Set(key, value)
	}

	properties = resolved
	return nil
}

// flatten reads the YAML tree recursively into dotted keys
func flatten(prefix string, data map[string]any) map[string]any {
	result := make(map[string]any)
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case map[string]any:
			for k, nested := range flatten(fullKey, v) {
				result[k] = nested
			}
		case []any:
			items := make([]any, 0, len(v))
			for _, item := range v {
				items = append(items, resolveValue(item))
			}
			result[fullKey] = items
		default:
			result[fullKey] = resolveValue(v)
		}
	}
	return result
}

func resolveValue(value any) any {
	if s, ok := value.(string); ok {
		return resolveEnvVariable(s)
	}
	return value
}

// resolveEnvVariable replaces every ${NAME:default} occurrence with the environment value or its default
func resolveEnvVariable(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		if envValue, exists := os.LookupEnv(groups[1]); exists {
			return envValue
		}
		return groups[2]
	})
}

func Get(key string) any {
	return properties.Get(key)
}

func GetString(key string) string {
	return properties.GetString(key)
}

func GetBool(key string) bool {
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

func GetInt(key string) int {
	return properties.GetInt(key)
}

func GetStringSlice(key string) []string {
	return properties.GetStringSlice(key)
}

func GetStringMapString(key string) map[string]string {
	return properties.GetStringMapString(key)
}
