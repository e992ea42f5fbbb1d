package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 모든 Repository 의 집합 진입점
type Repository struct {
	db *gorm.DB

	Instructor InstructorRepository
	OffDay     OffDayRepository
	Course     CourseRepository
}

// NewRepository Repository 집합 생성
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:         db,
		Instructor: NewInstructorRepo(db),
		OffDay:     NewOffDayRepo(db),
		Course:     NewCourseRepo(db),
	}
}

// BeginTx 트랜잭션 시작. 호출 측이 Commit/Rollback 을 책임진다.
// db 가 없는 구성(테스트 더블)에서는 nil 트랜잭션을 반환한다.
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	if r.db == nil {
		return nil, nil
	}
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return tx, nil
}

// WithTx 주어진 트랜잭션에 바인딩된 Repository 집합 반환
// nil 트랜잭션이면 자기 자신을 그대로 반환한다.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return NewRepository(tx)
}
