package config

import (
	"os"
	"strings"

	"github.com/gonewx/survival/pkg/embedded"
)

// readConfigFile 读取配置文件
// "data/" 开头且嵌入资源已初始化时从嵌入资源读取，否则读取本地文件
func readConfigFile(path string) ([]byte, error) {
	if embedded.IsInitialized() && strings.HasPrefix(strings.TrimPrefix(path, "./"), "data/") {
		if embedded.Exists(path) {
			return embedded.ReadFile(path)
		}
	}
	return os.ReadFile(path)
}
