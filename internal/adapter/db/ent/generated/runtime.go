// Code generated by ent, DO NOT EDIT.

package generated

import (
	"time"

	"github.com/google/uuid"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/certificate"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/course"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/enrollment"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/lesson"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/quiz"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/review"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/section"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	certificateFields := schema.Certificate{}.Fields()
	_ = certificateFields
	// certificateDescIssueDate is the schema descriptor for issue_date field.
	certificateDescIssueDate := certificateFields[5].Descriptor()
	// certificate.DefaultIssueDate holds the default value on creation for the issue_date field.
	certificate.DefaultIssueDate = certificateDescIssueDate.Default.(func() time.Time)
	// certificateDescID is the schema descriptor for id field.
	certificateDescID := certificateFields[0].Descriptor()
	// certificate.DefaultID holds the default value on creation for the id field.
	certificate.DefaultID = certificateDescID.Default.(func() uuid.UUID)
	courseFields := schema.Course{}.Fields()
	_ = courseFields
	// courseDescSubtitle is the schema descriptor for subtitle field.
	courseDescSubtitle := courseFields[4].Descriptor()
	// course.DefaultSubtitle holds the default value on creation for the subtitle field.
	course.DefaultSubtitle = courseDescSubtitle.Default.(string)
	// courseDescDescription is the schema descriptor for description field.
	courseDescDescription := courseFields[5].Descriptor()
	// course.DefaultDescription holds the default value on creation for the description field.
	course.DefaultDescription = courseDescDescription.Default.(string)
	// courseDescCategory is the schema descriptor for category field.
	courseDescCategory := courseFields[6].Descriptor()
	// course.DefaultCategory holds the default value on creation for the category field.
	course.DefaultCategory = courseDescCategory.Default.(string)
	// courseDescLevel is the schema descriptor for level field.
	courseDescLevel := courseFields[7].Descriptor()
	// course.DefaultLevel holds the default value on creation for the level field.
	course.DefaultLevel = courseDescLevel.Default.(int)
	// courseDescLanguage is the schema descriptor for language field.
	courseDescLanguage := courseFields[8].Descriptor()
	// course.DefaultLanguage holds the default value on creation for the language field.
	course.DefaultLanguage = courseDescLanguage.Default.(string)
	// courseDescThumbnailURL is the schema descriptor for thumbnail_url field.
	courseDescThumbnailURL := courseFields[9].Descriptor()
	// course.DefaultThumbnailURL holds the default value on creation for the thumbnail_url field.
	course.DefaultThumbnailURL = courseDescThumbnailURL.Default.(string)
	// courseDescPrice is the schema descriptor for price field.
	courseDescPrice := courseFields[10].Descriptor()
	// course.DefaultPrice holds the default value on creation for the price field.
	course.DefaultPrice = courseDescPrice.Default.(int64)
	// courseDescStatus is the schema descriptor for status field.
	courseDescStatus := courseFields[12].Descriptor()
	// course.DefaultStatus holds the default value on creation for the status field.
	course.DefaultStatus = courseDescStatus.Default.(int)
	// courseDescRating is the schema descriptor for rating field.
	courseDescRating := courseFields[13].Descriptor()
	// course.DefaultRating holds the default value on creation for the rating field.
	course.DefaultRating = courseDescRating.Default.(float64)
	// courseDescNumberOfRating is the schema descriptor for number_of_rating field.
	courseDescNumberOfRating := courseFields[14].Descriptor()
	// course.DefaultNumberOfRating holds the default value on creation for the number_of_rating field.
	course.DefaultNumberOfRating = courseDescNumberOfRating.Default.(int)
	// courseDescSectionCount is the schema descriptor for section_count field.
	courseDescSectionCount := courseFields[15].Descriptor()
	// course.DefaultSectionCount holds the default value on creation for the section_count field.
	course.DefaultSectionCount = courseDescSectionCount.Default.(int)
	// courseDescLessonCount is the schema descriptor for lesson_count field.
	courseDescLessonCount := courseFields[16].Descriptor()
	// course.DefaultLessonCount holds the default value on creation for the lesson_count field.
	course.DefaultLessonCount = courseDescLessonCount.Default.(int)
	// courseDescQuizCount is the schema descriptor for quiz_count field.
	courseDescQuizCount := courseFields[17].Descriptor()
	// course.DefaultQuizCount holds the default value on creation for the quiz_count field.
	course.DefaultQuizCount = courseDescQuizCount.Default.(int)
	// courseDescEnrollmentCount is the schema descriptor for enrollment_count field.
	courseDescEnrollmentCount := courseFields[18].Descriptor()
	// course.DefaultEnrollmentCount holds the default value on creation for the enrollment_count field.
	course.DefaultEnrollmentCount = courseDescEnrollmentCount.Default.(int)
	// courseDescVersion is the schema descriptor for version field.
	courseDescVersion := courseFields[20].Descriptor()
	// course.DefaultVersion holds the default value on creation for the version field.
	course.DefaultVersion = courseDescVersion.Default.(int)
	// courseDescCreatedAt is the schema descriptor for created_at field.
	courseDescCreatedAt := courseFields[21].Descriptor()
	// course.DefaultCreatedAt holds the default value on creation for the created_at field.
	course.DefaultCreatedAt = courseDescCreatedAt.Default.(func() time.Time)
	// courseDescUpdatedAt is the schema descriptor for updated_at field.
	courseDescUpdatedAt := courseFields[22].Descriptor()
	// course.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	course.DefaultUpdatedAt = courseDescUpdatedAt.Default.(func() time.Time)
	// course.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	course.UpdateDefaultUpdatedAt = courseDescUpdatedAt.UpdateDefault.(func() time.Time)
	// courseDescID is the schema descriptor for id field.
	courseDescID := courseFields[0].Descriptor()
	// course.DefaultID holds the default value on creation for the id field.
	course.DefaultID = courseDescID.Default.(func() uuid.UUID)
	enrollmentFields := schema.Enrollment{}.Fields()
	_ = enrollmentFields
	// enrollmentDescStatus is the schema descriptor for status field.
	enrollmentDescStatus := enrollmentFields[3].Descriptor()
	// enrollment.DefaultStatus holds the default value on creation for the status field.
	enrollment.DefaultStatus = enrollmentDescStatus.Default.(int)
	// enrollmentDescProgressPercent is the schema descriptor for progress_percent field.
	enrollmentDescProgressPercent := enrollmentFields[5].Descriptor()
	// enrollment.DefaultProgressPercent holds the default value on creation for the progress_percent field.
	enrollment.DefaultProgressPercent = enrollmentDescProgressPercent.Default.(float64)
	// enrollmentDescVersion is the schema descriptor for version field.
	enrollmentDescVersion := enrollmentFields[7].Descriptor()
	// enrollment.DefaultVersion holds the default value on creation for the version field.
	enrollment.DefaultVersion = enrollmentDescVersion.Default.(int)
	// enrollmentDescCreatedAt is the schema descriptor for created_at field.
	enrollmentDescCreatedAt := enrollmentFields[8].Descriptor()
	// enrollment.DefaultCreatedAt holds the default value on creation for the created_at field.
	enrollment.DefaultCreatedAt = enrollmentDescCreatedAt.Default.(func() time.Time)
	// enrollmentDescUpdatedAt is the schema descriptor for updated_at field.
	enrollmentDescUpdatedAt := enrollmentFields[9].Descriptor()
	// enrollment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	enrollment.DefaultUpdatedAt = enrollmentDescUpdatedAt.Default.(func() time.Time)
	// enrollment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	enrollment.UpdateDefaultUpdatedAt = enrollmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// enrollmentDescID is the schema descriptor for id field.
	enrollmentDescID := enrollmentFields[0].Descriptor()
	// enrollment.DefaultID holds the default value on creation for the id field.
	enrollment.DefaultID = enrollmentDescID.Default.(func() uuid.UUID)
	lessonFields := schema.Lesson{}.Fields()
	_ = lessonFields
	// lessonDescDescription is the schema descriptor for description field.
	lessonDescDescription := lessonFields[4].Descriptor()
	// lesson.DefaultDescription holds the default value on creation for the description field.
	lesson.DefaultDescription = lessonDescDescription.Default.(string)
	// lessonDescContentType is the schema descriptor for content_type field.
	lessonDescContentType := lessonFields[5].Descriptor()
	// lesson.DefaultContentType holds the default value on creation for the content_type field.
	lesson.DefaultContentType = lessonDescContentType.Default.(int)
	// lessonDescContentURL is the schema descriptor for content_url field.
	lessonDescContentURL := lessonFields[6].Descriptor()
	// lesson.DefaultContentURL holds the default value on creation for the content_url field.
	lesson.DefaultContentURL = lessonDescContentURL.Default.(string)
	// lessonDescDurationSeconds is the schema descriptor for duration_seconds field.
	lessonDescDurationSeconds := lessonFields[7].Descriptor()
	// lesson.DefaultDurationSeconds holds the default value on creation for the duration_seconds field.
	lesson.DefaultDurationSeconds = lessonDescDurationSeconds.Default.(int)
	// lessonDescOrder is the schema descriptor for order field.
	lessonDescOrder := lessonFields[8].Descriptor()
	// lesson.DefaultOrder holds the default value on creation for the order field.
	lesson.DefaultOrder = lessonDescOrder.Default.(int)
	// lessonDescIsPreviewable is the schema descriptor for is_previewable field.
	lessonDescIsPreviewable := lessonFields[9].Descriptor()
	// lesson.DefaultIsPreviewable holds the default value on creation for the is_previewable field.
	lesson.DefaultIsPreviewable = lessonDescIsPreviewable.Default.(bool)
	// lessonDescCreatedAt is the schema descriptor for created_at field.
	lessonDescCreatedAt := lessonFields[11].Descriptor()
	// lesson.DefaultCreatedAt holds the default value on creation for the created_at field.
	lesson.DefaultCreatedAt = lessonDescCreatedAt.Default.(func() time.Time)
	// lessonDescUpdatedAt is the schema descriptor for updated_at field.
	lessonDescUpdatedAt := lessonFields[12].Descriptor()
	// lesson.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lesson.DefaultUpdatedAt = lessonDescUpdatedAt.Default.(func() time.Time)
	// lesson.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lesson.UpdateDefaultUpdatedAt = lessonDescUpdatedAt.UpdateDefault.(func() time.Time)
	// lessonDescID is the schema descriptor for id field.
	lessonDescID := lessonFields[0].Descriptor()
	// lesson.DefaultID holds the default value on creation for the id field.
	lesson.DefaultID = lessonDescID.Default.(func() uuid.UUID)
	quizFields := schema.Quiz{}.Fields()
	_ = quizFields
	// quizDescPassingScore is the schema descriptor for passing_score field.
	quizDescPassingScore := quizFields[4].Descriptor()
	// quiz.DefaultPassingScore holds the default value on creation for the passing_score field.
	quiz.DefaultPassingScore = quizDescPassingScore.Default.(float64)
	// quizDescMaxAttempts is the schema descriptor for max_attempts field.
	quizDescMaxAttempts := quizFields[5].Descriptor()
	// quiz.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	quiz.DefaultMaxAttempts = quizDescMaxAttempts.Default.(int)
	// quizDescIsRequired is the schema descriptor for is_required field.
	quizDescIsRequired := quizFields[6].Descriptor()
	// quiz.DefaultIsRequired holds the default value on creation for the is_required field.
	quiz.DefaultIsRequired = quizDescIsRequired.Default.(bool)
	// quizDescCreatedAt is the schema descriptor for created_at field.
	quizDescCreatedAt := quizFields[8].Descriptor()
	// quiz.DefaultCreatedAt holds the default value on creation for the created_at field.
	quiz.DefaultCreatedAt = quizDescCreatedAt.Default.(func() time.Time)
	// quizDescUpdatedAt is the schema descriptor for updated_at field.
	quizDescUpdatedAt := quizFields[9].Descriptor()
	// quiz.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	quiz.DefaultUpdatedAt = quizDescUpdatedAt.Default.(func() time.Time)
	// quiz.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	quiz.UpdateDefaultUpdatedAt = quizDescUpdatedAt.UpdateDefault.(func() time.Time)
	// quizDescID is the schema descriptor for id field.
	quizDescID := quizFields[0].Descriptor()
	// quiz.DefaultID holds the default value on creation for the id field.
	quiz.DefaultID = quizDescID.Default.(func() uuid.UUID)
	reviewFields := schema.Review{}.Fields()
	_ = reviewFields
	// reviewDescComment is the schema descriptor for comment field.
	reviewDescComment := reviewFields[6].Descriptor()
	// review.DefaultComment holds the default value on creation for the comment field.
	review.DefaultComment = reviewDescComment.Default.(string)
	// reviewDescCreatedAt is the schema descriptor for created_at field.
	reviewDescCreatedAt := reviewFields[7].Descriptor()
	// review.DefaultCreatedAt holds the default value on creation for the created_at field.
	review.DefaultCreatedAt = reviewDescCreatedAt.Default.(func() time.Time)
	// reviewDescUpdatedAt is the schema descriptor for updated_at field.
	reviewDescUpdatedAt := reviewFields[8].Descriptor()
	// review.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	review.DefaultUpdatedAt = reviewDescUpdatedAt.Default.(func() time.Time)
	// review.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	review.UpdateDefaultUpdatedAt = reviewDescUpdatedAt.UpdateDefault.(func() time.Time)
	// reviewDescID is the schema descriptor for id field.
	reviewDescID := reviewFields[0].Descriptor()
	// review.DefaultID holds the default value on creation for the id field.
	review.DefaultID = reviewDescID.Default.(func() uuid.UUID)
	sectionFields := schema.Section{}.Fields()
	_ = sectionFields
	// sectionDescDescription is the schema descriptor for description field.
	sectionDescDescription := sectionFields[3].Descriptor()
	// section.DefaultDescription holds the default value on creation for the description field.
	section.DefaultDescription = sectionDescDescription.Default.(string)
	// sectionDescOrder is the schema descriptor for order field.
	sectionDescOrder := sectionFields[4].Descriptor()
	// section.DefaultOrder holds the default value on creation for the order field.
	section.DefaultOrder = sectionDescOrder.Default.(int)
	// sectionDescIsPublished is the schema descriptor for is_published field.
	sectionDescIsPublished := sectionFields[5].Descriptor()
	// section.DefaultIsPublished holds the default value on creation for the is_published field.
	section.DefaultIsPublished = sectionDescIsPublished.Default.(bool)
	// sectionDescCreatedAt is the schema descriptor for created_at field.
	sectionDescCreatedAt := sectionFields[7].Descriptor()
	// section.DefaultCreatedAt holds the default value on creation for the created_at field.
	section.DefaultCreatedAt = sectionDescCreatedAt.Default.(func() time.Time)
	// sectionDescUpdatedAt is the schema descriptor for updated_at field.
	sectionDescUpdatedAt := sectionFields[8].Descriptor()
	// section.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	section.DefaultUpdatedAt = sectionDescUpdatedAt.Default.(func() time.Time)
	// section.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	section.UpdateDefaultUpdatedAt = sectionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sectionDescID is the schema descriptor for id field.
	sectionDescID := sectionFields[0].Descriptor()
	// section.DefaultID holds the default value on creation for the id field.
	section.DefaultID = sectionDescID.Default.(func() uuid.UUID)
}
