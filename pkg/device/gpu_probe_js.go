//go:build js

package device

import "syscall/js"

// ProbeGPU 在浏览器中探测 WebGL 上下文能否创建
func ProbeGPU() bool {
	document := js.Global().Get("document")
	if document.IsUndefined() || document.IsNull() {
		return false
	}
	canvas := document.Call("createElement", "canvas")
	for _, kind := range []string{"webgl2", "webgl"} {
		ctx := canvas.Call("getContext", kind)
		if !ctx.IsUndefined() && !ctx.IsNull() {
			return true
		}
	}
	return false
}
