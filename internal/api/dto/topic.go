package dto

type TopicDTO struct {
	ID    uint64 `json:"id"`
	Title string `json:"title"`
	// IsFollowed 当前登录用户是否已关注该话题
	IsFollowed bool `json:"is_followed"`
}
