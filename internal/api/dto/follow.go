package dto

// FollowPartyDTO 关注关系一方的计数快照
type FollowPartyDTO struct {
	UserID    uint64 `json:"user_id"`
	Followers int64  `json:"followers"`
	Following int64  `json:"following"`
}

// FollowStatusDTO 关注操作后的结果，含双方计数
type FollowStatusDTO struct {
	IsFollowing bool           `json:"is_following"`
	Follower    FollowPartyDTO `json:"follower"`
	Target      FollowPartyDTO `json:"target"`
}
