// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package server

import (
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/cache"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/transport"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/usecase"
)

import (
	_ "github.com/lib/pq"
)

// Injectors from wire.go:

// InitializeServer sets up the full HTTP server with all dependencies wired.
func InitializeServer() (*Server, error) {
	config, err := NewConfig()
	if err != nil {
		return nil, err
	}
	client, err := NewEntClient(config)
	if err != nil {
		return nil, err
	}
	courseRepository := db.NewCourseRepository(client)
	redisClient := NewRedisClient(config)
	courseCache := cache.NewCourseCache(redisClient)
	logger, err := NewLogger()
	if err != nil {
		return nil, err
	}
	kafkaProducer := NewKafkaProducer(config, logger)
	courseService := usecase.NewCourseService(courseRepository, courseCache, kafkaProducer, logger)
	courseHandler := transport.NewCourseHandler(courseService)
	sectionRepository := db.NewSectionRepository(client)
	lessonRepository := db.NewLessonRepository(client)
	quizRepository := db.NewQuizRepository(client)
	curriculumService := usecase.NewCurriculumService(courseRepository, sectionRepository, lessonRepository, quizRepository, courseCache, kafkaProducer, logger)
	curriculumHandler := transport.NewCurriculumHandler(curriculumService)
	reviewRepository := db.NewReviewRepository(client)
	enrollmentRepository := db.NewEnrollmentRepository(client)
	locker := cache.NewLocker(redisClient)
	reviewService := usecase.NewReviewService(reviewRepository, courseRepository, enrollmentRepository, courseCache, locker, kafkaProducer, logger)
	reviewHandler := transport.NewReviewHandler(reviewService)
	certificateRepository := db.NewCertificateRepository(client)
	enrollmentService := usecase.NewEnrollmentService(enrollmentRepository, courseRepository, lessonRepository, quizRepository, certificateRepository, courseCache, locker, kafkaProducer, logger)
	enrollmentHandler := transport.NewEnrollmentHandler(enrollmentService)
	validator, err := NewProtoValidator()
	if err != nil {
		return nil, err
	}
	handler, err := NewHTTPHandler(courseHandler, curriculumHandler, reviewHandler, enrollmentHandler, validator, logger)
	if err != nil {
		return nil, err
	}
	tracerShutdown, err := NewTracerProvider(config)
	if err != nil {
		return nil, err
	}
	server := NewServer(config, handler, client, redisClient, kafkaProducer, tracerShutdown, logger)
	return server, nil
}
