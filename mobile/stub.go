//go:build !mobile

// 普通构建（桌面端、go test ./...）只编译这个文件。
// ebitenmobile 绑定的入口在 mobile.go，需要 -tags mobile，
// 预设配置来自 data 包的嵌入文件系统。
package mobile

// Dummy 让 mobile 包在没有 mobile 标签时仍可被导入和编译
func Dummy() {}
