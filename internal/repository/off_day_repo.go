package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jeunggu9-sudo/timetable/internal/model"
)

// OffDayRepository 교관 휴무일 데이터 접근 인터페이스
type OffDayRepository interface {
	// CreateIgnoreDuplicate 휴무일 삽입.
	// (instructor_id, date) 가 이미 있으면 삽입하지 않고 created=false 반환.
	// 사전 존재 확인 쿼리 없이 유니크 제약으로 중복을 판정한다.
	CreateIgnoreDuplicate(ctx context.Context, offDay *model.OffDay) (created bool, err error)
	GetByID(ctx context.Context, id string) (*model.OffDay, error)
	ListByInstructor(ctx context.Context, instructorID string) ([]model.OffDay, error)
	List(ctx context.Context, offset, limit int) ([]model.OffDay, int64, error)
	Delete(ctx context.Context, id string) error
}

type offDayRepo struct {
	db *gorm.DB
}

// NewOffDayRepo OffDayRepository 인스턴스 생성
func NewOffDayRepo(db *gorm.DB) OffDayRepository {
	return &offDayRepo{db: db}
}

func (r *offDayRepo) CreateIgnoreDuplicate(ctx context.Context, offDay *model.OffDay) (bool, error) {
	offDay.Date = offDay.Date.UTC().Truncate(24 * time.Hour)

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "instructor_id"}, {Name: "date"}},
			DoNothing: true,
		}).
		Create(offDay)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *offDayRepo) GetByID(ctx context.Context, id string) (*model.OffDay, error) {
	var offDay model.OffDay
	err := r.db.WithContext(ctx).
		Preload("Instructor").
		Where("off_day_id = ?", id).
		First(&offDay).Error
	if err != nil {
		return nil, err
	}
	return &offDay, nil
}

func (r *offDayRepo) ListByInstructor(ctx context.Context, instructorID string) ([]model.OffDay, error) {
	var offDays []model.OffDay
	err := r.db.WithContext(ctx).
		Where("instructor_id = ?", instructorID).
		Order("date ASC").
		Find(&offDays).Error
	return offDays, err
}

func (r *offDayRepo) List(ctx context.Context, offset, limit int) ([]model.OffDay, int64, error) {
	var offDays []model.OffDay
	var total int64

	db := r.db.WithContext(ctx).Model(&model.OffDay{})

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Instructor").
		Offset(offset).Limit(limit).
		Order("date ASC").
		Find(&offDays).Error; err != nil {
		return nil, 0, err
	}

	return offDays, total, nil
}

func (r *offDayRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("off_day_id = ?", id).
		Delete(&model.OffDay{}).Error
}
