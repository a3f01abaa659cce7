//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。手动构建：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.firesim -o build/android/firesim.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/FireSim.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/firesim/data"
	"github.com/decker502/firesim/pkg/app"
	"github.com/decker502/firesim/pkg/config"
	"github.com/decker502/firesim/pkg/embedded"
)

// Preset 移动端使用的预设
const Preset = "default"

func init() {
	// 初始化嵌入资源
	embedded.Init(data.FS)

	world := config.DefaultWorldConfig()
	if raw, err := embedded.ReadPreset(Preset); err == nil {
		if parsed, err := config.ParseWorldConfig(raw); err == nil {
			world = parsed
		} else {
			log.Printf("[Mobile] preset %s invalid, using defaults: %v", Preset, err)
		}
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose: true, // Enable verbose logging for debugging
		World:   world,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
