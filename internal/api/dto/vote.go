package dto

// ScoreDTO 投票操作后的最新分数，分数 = 赞数 - 踩数
type ScoreDTO struct {
	Score int64 `json:"score"`
}
