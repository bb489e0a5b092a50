//go:build wireinject

package server

import (
	"github.com/google/wire"

	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/cache"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/event"
	adaptertransport "github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/transport"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/usecase"
)

// InitializeServer sets up the full HTTP server with all dependencies wired.
func InitializeServer() (*Server, error) {
	wire.Build(
		NewConfig,
		NewLogger,
		NewEntClient,
		NewRedisClient,
		NewKafkaProducer,
		NewTracerProvider,
		wire.Bind(new(core.EventProducer), new(*event.KafkaProducer)),
		wire.Bind(new(core.CourseCache), new(*cache.CourseCache)),
		cache.NewCourseCache,
		wire.Bind(new(core.Locker), new(*cache.Locker)),
		cache.NewLocker,
		wire.Bind(new(core.CourseRepository), new(*db.CourseRepository)),
		db.NewCourseRepository,
		wire.Bind(new(core.SectionRepository), new(*db.SectionRepository)),
		db.NewSectionRepository,
		wire.Bind(new(core.LessonRepository), new(*db.LessonRepository)),
		db.NewLessonRepository,
		wire.Bind(new(core.QuizRepository), new(*db.QuizRepository)),
		db.NewQuizRepository,
		wire.Bind(new(core.ReviewRepository), new(*db.ReviewRepository)),
		db.NewReviewRepository,
		wire.Bind(new(core.EnrollmentRepository), new(*db.EnrollmentRepository)),
		db.NewEnrollmentRepository,
		wire.Bind(new(core.CertificateRepository), new(*db.CertificateRepository)),
		db.NewCertificateRepository,
		wire.Bind(new(core.CourseService), new(*usecase.CourseService)),
		usecase.NewCourseService,
		wire.Bind(new(core.CurriculumService), new(*usecase.CurriculumService)),
		usecase.NewCurriculumService,
		wire.Bind(new(core.ReviewService), new(*usecase.ReviewService)),
		usecase.NewReviewService,
		wire.Bind(new(core.EnrollmentService), new(*usecase.EnrollmentService)),
		usecase.NewEnrollmentService,
		adaptertransport.NewCourseHandler,
		adaptertransport.NewCurriculumHandler,
		adaptertransport.NewReviewHandler,
		adaptertransport.NewEnrollmentHandler,
		NewProtoValidator,
		NewHTTPHandler,
		NewServer,
	)
	return nil, nil
}
