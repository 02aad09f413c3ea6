package dto

// FilterDTO 筛选器表单，全部条件可选
type FilterDTO struct {
	Sort           string `form:"sort" json:"sort"`
	TimeSort       string `form:"time_sort" json:"time_sort"`
	TopicFilter    string `form:"topic_filter" json:"topic_filter"`
	MinDate        string `form:"min_date" json:"min_date"`
	MaxDate        string `form:"max_date" json:"max_date"`
	MinUpvote      *int   `form:"min_upvote" json:"min_upvote"`
	MaxUpvote      *int   `form:"max_upvote" json:"max_upvote"`
	MinDownvote    *int   `form:"min_downvote" json:"min_downvote"`
	MaxDownvote    *int   `form:"max_downvote" json:"max_downvote"`
	UserID         uint64 `form:"user_id" json:"user_id"`
	FollowedTopics bool   `form:"followedTopics" json:"followedTopics"`
}

// FilterResultDTO 筛选结果，html 为渲染好的帖子列表片段
type FilterResultDTO struct {
	Success bool   `json:"success"`
	HTML    string `json:"html"`
}
