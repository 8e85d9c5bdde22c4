// Package config provides configuration loading for acitool.
//
// # Sources
//
// Settings are layered, later sources winning:
//
//  1. Built-in defaults (DefaultConfig)
//  2. The YAML configuration file
//  3. ACITOOL_* environment variables
//
// The file is the one given with --config, or config.yaml under
// $XDG_CONFIG_HOME/acitool (~/.config/acitool). A missing default file is
// not an error.
//
// # Example Configuration
//
//	logging:
//	  level: info
//	  format: text
//	  output: stderr
//
//	output:
//	  format: table
//
//	schema:
//	  file: /etc/acitool/local.schema
//
//	directory:
//	  url: ldaps://ldap.example.com
//	  bind_dn: cn=Directory Manager
//	  bind_password: ${LDAP_PASSWORD}
//	  base_dn: dc=example,dc=com
//	  timeout: 10s
//
//	watch:
//	  debounce: 200ms
//
// # Environment Variables
//
// Keys map to variables by upper-casing and replacing dots with
// underscores:
//
//	ACITOOL_LOGGING_LEVEL=debug
//	ACITOOL_DIRECTORY_BIND_PASSWORD=secret
//
// ${VAR} and ${VAR:-default} references in the file are expanded before
// parsing.
//
// # Validation
//
// ValidateConfig returns every problem found, each as a ValidationError
// naming the offending key.
package config
