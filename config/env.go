package config

import "strings"

var envReplacer = strings.NewReplacer(".", "_", "-", "_")
