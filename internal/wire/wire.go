package wire

import (
	"Ripple/internal/api"
	"Ripple/internal/api/config"
	"Ripple/internal/api/handler"
	"Ripple/internal/job"
	"Ripple/internal/pkg/cron"
	"Ripple/internal/pkg/es"
	"Ripple/internal/pkg/kafka"
	mongopkg "Ripple/internal/pkg/mongo"
	"Ripple/internal/policy"
	"Ripple/internal/repository"
	"Ripple/internal/service"

	"github.com/gin-gonic/gin"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	Producer     kafka.EventProducer
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoDB *mongodrv.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	topicRepo := repository.NewTopicRepository(db)
	followRepo := repository.NewFollowRepository(db)
	recoveryRepo := repository.NewRecoveryRepository(db)

	inboxRepo := mongopkg.NewInboxRepo(mongoDB)
	postESRepo := es.NewPostRepo(es.Client)

	postPolicy := policy.NewPostPolicy()
	commentPolicy := policy.NewCommentPolicy()
	imageCommentPolicy := policy.NewImageCommentPolicy()
	userPolicy := policy.NewUserPolicy()

	producer, err := kafka.NewEventProducer(cfg)
	if err != nil {
		return nil, err
	}

	mailService := service.NewMailService()
	userService := service.NewUserService(userRepo, followRepo, recoveryRepo, mailService)
	followService := service.NewFollowService(followRepo, userRepo, topicRepo, producer)
	postService := service.NewPostService(postRepo, topicRepo, followRepo, voteRepo, postESRepo, postPolicy, producer)
	commentService := service.NewCommentService(commentRepo, postRepo, commentPolicy, imageCommentPolicy, producer)
	voteService := service.NewVoteService(voteRepo, postRepo, commentRepo, userRepo, producer)
	inboxService := service.NewInboxService(inboxRepo)

	handlers := &api.HandlersGroup{
		AuthHandler:    handler.NewAuthHandler(userService),
		UserHandler:    handler.NewUserHandler(userService, userPolicy),
		FollowHandler:  handler.NewFollowHandler(followService),
		PostHandler:    handler.NewPostHandler(postService, userService),
		CommentHandler: handler.NewCommentHandler(commentService, userService),
		VoteHandler:    handler.NewVoteHandler(voteService),
		FilterHandler:  handler.NewFilterHandler(postService),
		InboxHandler:   handler.NewInboxHandler(inboxService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, inboxRepo)
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(
		job.NewRecoveryCleanJob(recoveryRepo),
		job.NewVoteSyncJob(voteRepo, postRepo, commentRepo),
	)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		Producer:     producer,
		CronMgr:      cronMgr,
	}, nil
}
