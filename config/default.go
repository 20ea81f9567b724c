package config

import _ "embed"

// DefaultConfigYAML 嵌入的默认配置，外部配置文件缺失时保证可直接启动
//
//go:embed default.yaml
var DefaultConfigYAML []byte
