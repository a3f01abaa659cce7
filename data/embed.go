// Package data 嵌入内置的世界预设
//
// 放在独立包中，cmd/ 下的各个程序都可以直接导入。
package data

import "embed"

// FS 内置资源，路径形如 "presets/default.yaml"
//
//go:embed presets/*.yaml
var FS embed.FS
