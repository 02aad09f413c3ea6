// Package render 输出筛选器返回的帖子列表 HTML 片段
package render

import (
	"Ripple/internal/api/dto"
	"bytes"
	_ "embed"
	"html/template"
)

//go:embed templates/posts.html
var postsTemplate string

var postsTmpl = template.Must(template.New("posts").Parse(postsTemplate))

// PostsHTML 渲染帖子列表片段，空列表渲染占位文案
func PostsHTML(posts []*dto.PostDTO) (string, error) {
	var buf bytes.Buffer
	if err := postsTmpl.Execute(&buf, posts); err != nil {
		return "", err
	}
	return buf.String(), nil
}
