package model

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gormTag(t *testing.T, model any, field string) []string {
	t.Helper()
	structField, ok := reflect.TypeOf(model).FieldByName(field)
	require.True(t, ok, "字段 %s 不存在", field)
	return strings.Split(structField.Tag.Get("gorm"), ";")
}

// 时间列不走 GORM 默认命名，必须显式声明入库自动填充
func TestTimestampColumnsAutoFill(t *testing.T) {
	t.Run("帖子发布时间", func(t *testing.T) {
		assert.Contains(t, gormTag(t, Post{}, "PostDate"), "autoCreateTime")
	})

	t.Run("评论时间", func(t *testing.T) {
		assert.Contains(t, gormTag(t, Comment{}, "CommentDate"), "autoCreateTime")
	})
}
