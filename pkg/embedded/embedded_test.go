package embedded

import (
	"testing"
	"testing/fstest"
)

func TestIsInitialized(t *testing.T) {
	initialized = false

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{})

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	initialized = false
}

func TestReadFileNotInitialized(t *testing.T) {
	initialized = false

	_, err := ReadFile("data/levels.yaml")
	if err == nil {
		t.Fatal("Expected error when calling ReadFile() before Init()")
	}
	if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestReadFile(t *testing.T) {
	Init(fstest.MapFS{
		"data/levels.yaml": {Data: []byte("levels: []")},
	})
	defer func() { initialized = false }()

	t.Run("读取存在的文件", func(t *testing.T) {
		data, err := ReadFile("./data/levels.yaml")
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if string(data) != "levels: []" {
			t.Errorf("unexpected content %q", data)
		}
	})

	t.Run("非法前缀", func(t *testing.T) {
		if _, err := ReadFile("assets/levels.yaml"); err == nil {
			t.Error("Expected error for unknown prefix")
		}
	})

	t.Run("Exists", func(t *testing.T) {
		if !Exists("data/levels.yaml") {
			t.Error("data/levels.yaml should exist")
		}
		if Exists("data/missing.yaml") {
			t.Error("data/missing.yaml should not exist")
		}
	})

	t.Run("Glob", func(t *testing.T) {
		matches, err := Glob("data/*.yaml")
		if err != nil {
			t.Fatalf("Glob failed: %v", err)
		}
		if len(matches) != 1 {
			t.Errorf("expected 1 match, got %d", len(matches))
		}
	})
}
