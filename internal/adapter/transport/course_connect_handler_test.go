package transport

import (
	"errors"
	"testing"

	fieldmaskpb "google.golang.org/protobuf/types/known/fieldmaskpb"

	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
	coursev1 "github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/pkg/api/course/v1"
)

func TestApplyCourseFieldMask(t *testing.T) {
	discount := int64(1999)
	target := &core.CourseDraft{
		Title:         "Old Title",
		Subtitle:      "old subtitle",
		Description:   "old description",
		Category:      "programming",
		Level:         core.CourseLevelBeginner,
		Language:      "en",
		ThumbnailURL:  "thumb.png",
		Price:         4999,
		DiscountPrice: &discount,
	}

	newDiscount := int64(999)
	patch := &coursev1.CourseDraft{
		Title:         "New Title",
		Subtitle:      "new subtitle",
		Description:   "new description",
		Category:      "design",
		Level:         coursev1.CourseLevel_COURSE_LEVEL_ADVANCED,
		Language:      "fr",
		ThumbnailUrl:  "thumb-new.png",
		Price:         5999,
		DiscountPrice: &newDiscount,
	}

	mask := &fieldmaskpb.FieldMask{
		Paths: []string{"title", "subtitle", "description", "category", "level", "language", "thumbnail_url", "price", "discount_price"},
	}

	if err := applyCourseFieldMask(target, patch, mask); err != nil {
		t.Fatalf("applyCourseFieldMask() error = %v", err)
	}

	if target.Title != "New Title" || target.Category != "design" || target.Language != "fr" {
		t.Fatalf("course fields were not updated correctly: %#v", target)
	}
	if target.Level != core.CourseLevelAdvanced {
		t.Fatalf("expected level advanced, got %v", target.Level)
	}
	if target.Price != 5999 {
		t.Fatalf("expected price 5999, got %d", target.Price)
	}
	if target.DiscountPrice == nil || *target.DiscountPrice != 999 {
		t.Fatalf("expected discount price 999, got %v", target.DiscountPrice)
	}
}

func TestApplyCourseFieldMask_PartialPaths(t *testing.T) {
	target := &core.CourseDraft{
		Title: "Keep Me",
		Price: 4999,
	}

	patch := &coursev1.CourseDraft{
		Title: "Would Overwrite",
		Price: 100,
	}

	mask := &fieldmaskpb.FieldMask{Paths: []string{"price"}}

	if err := applyCourseFieldMask(target, patch, mask); err != nil {
		t.Fatalf("applyCourseFieldMask() error = %v", err)
	}

	if target.Title != "Keep Me" {
		t.Fatalf("expected title untouched, got %q", target.Title)
	}
	if target.Price != 100 {
		t.Fatalf("expected price 100, got %d", target.Price)
	}
}

func TestApplyCourseFieldMask_ClearsDiscountPrice(t *testing.T) {
	discount := int64(1999)
	target := &core.CourseDraft{DiscountPrice: &discount}

	mask := &fieldmaskpb.FieldMask{Paths: []string{"discount_price"}}

	if err := applyCourseFieldMask(target, &coursev1.CourseDraft{}, mask); err != nil {
		t.Fatalf("applyCourseFieldMask() error = %v", err)
	}
	if target.DiscountPrice != nil {
		t.Fatalf("expected discount price cleared, got %v", target.DiscountPrice)
	}
}

func TestApplyCourseFieldMask_RejectsUnknownPath(t *testing.T) {
	mask := &fieldmaskpb.FieldMask{Paths: []string{"slug"}}

	err := applyCourseFieldMask(&core.CourseDraft{}, &coursev1.CourseDraft{}, mask)
	if err == nil {
		t.Fatal("expected error for unsupported path")
	}
	if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected error to wrap core.ErrValidation, got %v", err)
	}
}

func TestFromProtoCourseLevel_RejectsUnknownValue(t *testing.T) {
	if _, err := fromProtoCourseLevel(coursev1.CourseLevel(99)); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected core.ErrValidation, got %v", err)
	}
}

func TestCourseStatusConversionRoundTrip(t *testing.T) {
	statuses := []core.CourseStatus{
		core.CourseStatusDraft,
		core.CourseStatusPublished,
		core.CourseStatusUnpublished,
	}

	for _, status := range statuses {
		converted, err := fromProtoCourseStatus(toProtoCourseStatus(status))
		if err != nil {
			t.Fatalf("fromProtoCourseStatus() error = %v", err)
		}
		if converted != status {
			t.Fatalf("expected status %v to survive conversion, got %v", status, converted)
		}
	}
}

func TestParseID_RejectsMalformedValue(t *testing.T) {
	if _, err := parseID("course_id", "nope"); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected core.ErrValidation, got %v", err)
	}
}
