// Package embedded 提供嵌入资源的统一访问接口
//
// embed.FS 声明在 data 包中（与预设文件同目录）。
// 本包提供包装函数，让其他包按统一的路径规则访问嵌入的预设配置，
// 路径可写成 "data/presets/default.yaml" 或 "presets/default.yaml"。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// PresetDir 预设配置在嵌入文件系统中的目录
const PresetDir = "presets"

var (
	dataFS      fs.FS
	initialized bool
)

var errNotInitialized = errors.New("embedded package not initialized, call Init() first")

// Init 初始化嵌入的数据文件系统
// 必须在 main() 开始时、任何资源加载之前调用
// 测试中可以传入 fstest.MapFS
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 统一路径分隔符，去掉 "./" 和 "data/" 前缀
func normalize(p string) (string, error) {
	if !initialized {
		return "", errNotInitialized
	}
	p = strings.TrimPrefix(filepath.ToSlash(p), "./")
	p = strings.TrimPrefix(p, "data/")
	if !fs.ValidPath(p) {
		return "", fmt.Errorf("invalid resource path: %s", p)
	}
	return p, nil
}

// ReadFile 读取嵌入文件内容
func ReadFile(p string) ([]byte, error) {
	p, err := normalize(p)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, p)
}

// Exists 检查文件是否存在于嵌入文件系统中
func Exists(p string) bool {
	p, err := normalize(p)
	if err != nil {
		return false
	}
	_, err = fs.Stat(dataFS, p)
	return err == nil
}

// Glob 在嵌入文件系统中匹配文件
func Glob(pattern string) ([]string, error) {
	pattern, err := normalize(pattern)
	if err != nil {
		return nil, err
	}
	return fs.Glob(dataFS, pattern)
}

// PresetNames 返回所有预设名称（不含扩展名），按字母排序
func PresetNames() ([]string, error) {
	matches, err := Glob(path.Join(PresetDir, "*.yaml"))
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}

// ReadPreset 读取指定名称的预设 YAML
//
// 参数:
//   - name: 预设名称，如 "default"、"stress"
//
// 返回:
//   - []byte: YAML 原始内容
//   - error: 预设不存在或未初始化时返回错误
func ReadPreset(name string) ([]byte, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("invalid preset name %q", name)
	}
	data, err := ReadFile(path.Join(PresetDir, name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to read preset %q: %w", name, err)
	}
	return data, nil
}
