package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/jeunggu9-sudo/timetable/internal/model"
)

// CourseRepository 교과목 데이터 접근 인터페이스
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	List(ctx context.Context) ([]model.Course, error)
	// DeleteAll 업로드 교체 방식: 새 파일 업로드 시 기존 교과목 전체 삭제
	DeleteAll(ctx context.Context) error
}

type courseRepo struct {
	db *gorm.DB
}

// NewCourseRepo CourseRepository 인스턴스 생성
func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepo) List(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).Order("excel_order ASC").Find(&courses).Error
	return courses, err
}

func (r *courseRepo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.Course{}).Error
}
