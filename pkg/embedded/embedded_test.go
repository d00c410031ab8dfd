package embedded

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func resetState() {
	dataFS = nil
	initialized = false
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	resetState()
	defer resetState()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{})

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	resetState()

	if _, err := ReadFile("data/site.yaml"); err == nil {
		t.Error("Expected error when reading before Init()")
	}
}

// TestReadFile 测试读取嵌入文件及路径标准化
func TestReadFile(t *testing.T) {
	resetState()
	defer resetState()

	Init(fstest.MapFS{
		"data/site.yaml": &fstest.MapFile{Data: []byte("window: {}")},
	})

	for _, path := range []string{"data/site.yaml", "./data/site.yaml"} {
		data, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile(%q) error: %v", path, err)
		}
		if string(data) != "window: {}" {
			t.Errorf("ReadFile(%q): got %q", path, data)
		}
	}

	if _, err := ReadFile("assets/cube.png"); err == nil {
		t.Error("Expected error for unknown prefix")
	}
	if Exists("data/missing.yaml") {
		t.Error("Exists should be false for missing file")
	}
}

// TestReadConfigFileFallback 测试未嵌入时回退到文件系统
func TestReadConfigFileFallback(t *testing.T) {
	resetState()
	defer resetState()

	path := filepath.Join(t.TempDir(), "mailer.yaml")
	if err := os.WriteFile(path, []byte("addr: \":8080\""), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	data, err := ReadConfigFile(path)
	if err != nil {
		t.Fatalf("ReadConfigFile error: %v", err)
	}
	if string(data) != "addr: \":8080\"" {
		t.Errorf("ReadConfigFile: got %q", data)
	}
}
