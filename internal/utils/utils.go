package utils

import (
	"net/url"
	"os"
	"regexp"
	"strings"
)

func QueryParamsToLower(queryParams url.Values) url.Values {
	lowercaseParams := url.Values{}

	for key, values := range queryParams {
		lowercaseKey := strings.ToLower(key)
		lowercaseParams[lowercaseKey] = values
	}

	return lowercaseParams
}

func QueryParamsContainMultipleKeys(queryParams url.Values) bool {
	params := map[string]bool{}

	for key := range queryParams {
		lowercaseKey := strings.ToLower(key)
		if params[lowercaseKey] {
			return true
		}

		params[lowercaseKey] = true
	}

	return false
}

// SplitList splits a comma separated KVP value, dropping empty items.
func SplitList(value string) []string {
	var items []string

	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}

var envVarRegexp = regexp.MustCompile(`\${([^}]+)}`)

func EnvSubst(input string) string {
	result := envVarRegexp.ReplaceAllStringFunc(input, func(match string) string {
		varName := match[2 : len(match)-1]
		if value, exists := os.LookupEnv(varName); exists {
			return value
		}

		return ""
	})

	return result
}
