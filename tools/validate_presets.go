//go:build ignore

// validate_presets 检查 data/presets 下的预设：字段名是否都能识别、数值是否通过校验
//
// 用法: go run tools/validate_presets.go [dir]
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/decker502/firesim/pkg/config"
)

func main() {
	dir := "data/presets"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil || len(paths) == 0 {
		fmt.Printf("❌ 未找到预设: %s\n", dir)
		os.Exit(1)
	}

	failed := 0
	for _, path := range paths {
		if err := check(path); err != nil {
			fmt.Printf("❌ %s: %v\n", filepath.Base(path), err)
			failed++
			continue
		}
		fmt.Printf("✅ %s\n", filepath.Base(path))
	}

	if failed > 0 {
		fmt.Printf("❌ 有 %d 个预设无效\n", failed)
		os.Exit(1)
	}
	fmt.Printf("✅ 共 %d 个预设全部有效\n", len(paths))
}

func check(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// 拼写错误的字段会被 yaml.Unmarshal 静默忽略，这里用 KnownFields 单独检查
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var probe config.WorldConfig
	if err := dec.Decode(&probe); err != nil {
		return fmt.Errorf("unknown or malformed field: %w", err)
	}

	_, err = config.ParseWorldConfig(data)
	return err
}
