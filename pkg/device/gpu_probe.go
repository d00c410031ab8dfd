//go:build !js

package device

import (
	"log"

	"github.com/cogentcore/webgpu/wgpu"
)

// ProbeGPU 探测能否获得 GPU 适配器
// 创建 wgpu 实例并请求适配器，成功即视为可用，探测完成后立即释放
func ProbeGPU() (ok bool) {
	defer func() {
		// 缺少原生库等情况下 wgpu 可能 panic，按不可用处理
		if r := recover(); r != nil {
			log.Printf("[Device] GPU probe panicked: %v", r)
			ok = false
		}
	}()

	instance := wgpu.CreateInstance(nil)
	if instance == nil {
		return false
	}
	defer instance.Release()

	// 只请求真实适配器，不强制软件回退
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: false,
	})
	if err != nil || adapter == nil {
		log.Printf("[Device] No GPU adapter: %v", err)
		return false
	}
	adapter.Release()
	return true
}
