package consts

const (
	PostUpvoteKey      = "post:upvote:"
	PostDownvoteKey    = "post:downvote:"
	CommentUpvoteKey   = "comment:upvote:"
	CommentDownvoteKey = "comment:downvote:"

	// AnonymousCounterKey 注销用户序号，INCR 原子自增
	AnonymousCounterKey = "user:anonymous:counter"

	RecoveryMailLockKey = "recovery:mail:lock:"

	// 计票脏集合，同步任务据此回写冗余计数列
	PostVoteDirtyKey    = "vote:dirty:post"
	CommentVoteDirtyKey = "vote:dirty:comment"
)
