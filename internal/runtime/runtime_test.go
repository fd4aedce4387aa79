package runtime

import (
	"testing"
)

// TestConfigPath tests the ConfigPath variable
// TestConfigPath 测试 ConfigPath 变量
func TestConfigPath(t *testing.T) {
	// Save original value
	// 保存原始值
	originalPath := ConfigPath
	defer func() {
		ConfigPath = originalPath
	}()

	testPath := "/tmp/test_config.yaml"
	ConfigPath = testPath
	if ConfigPath != testPath {
		t.Errorf("ConfigPath should be %s, got %s", testPath, ConfigPath)
	}
}

// TestLedgerPath tests the LedgerPath variable
// TestLedgerPath 测试 LedgerPath 变量
func TestLedgerPath(t *testing.T) {
	originalPath := LedgerPath
	defer func() {
		LedgerPath = originalPath
	}()

	// Empty means "use the configuration file"
	// 为空表示使用配置文件中的值
	if LedgerPath != "" {
		t.Logf("LedgerPath is: %s", LedgerPath)
	}

	LedgerPath = "/srv/fw/events.csv"
	if LedgerPath != "/srv/fw/events.csv" {
		t.Errorf("LedgerPath should be '/srv/fw/events.csv', got %s", LedgerPath)
	}
}
