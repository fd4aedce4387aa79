package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestVersion_Default tests the value used by plain `go build`
// TestVersion_Default 测试未注入版本时的默认值
func TestVersion_Default(t *testing.T) {
	assert.NotEmpty(t, Version)
}

// TestVersion_Override tests that Version is a plain string variable, which -ldflags -X can set
// TestVersion_Override 测试 Version 是可被 -ldflags -X 设置的字符串变量
func TestVersion_Override(t *testing.T) {
	original := Version
	defer func() { Version = original }()

	Version = "v1.2.3"
	assert.Equal(t, "v1.2.3", Version)
}
