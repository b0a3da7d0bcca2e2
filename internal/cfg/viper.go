package cfg

import "github.com/spf13/viper"

// Thin wrappers around Viper so callers don't import it directly.

func IsSet(key string) bool { return viper.IsSet(key) }

func Get(key string) any { return viper.Get(key) }

func Set(key string, val any) { viper.Set(key, val) }

func GetString(key string) string { return viper.GetString(key) }

func GetBool(key string) bool { return viper.GetBool(key) }

func GetInt(key string) int { return viper.GetInt(key) }

func GetUint64(key string) uint64 { return viper.GetUint64(key) }

func GetStringSlice(key string) []string { return viper.GetStringSlice(key) }
