package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleDTO struct {
	Email    string `validate:"email"`
	Password string `validate:"min=8"`
}

func TestValidateDTO(t *testing.T) {
	t.Run("合法数据通过", func(t *testing.T) {
		assert.NoError(t, ValidateDTO(&sampleDTO{Email: "alice@example.com", Password: "password123"}))
	})

	t.Run("非法邮箱返回字段信息", func(t *testing.T) {
		err := ValidateDTO(&sampleDTO{Email: "not-an-email", Password: "password123"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Email")
	})

	t.Run("密码过短被拒", func(t *testing.T) {
		err := ValidateDTO(&sampleDTO{Email: "alice@example.com", Password: "short"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Password")
	})
}
