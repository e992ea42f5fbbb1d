package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jeunggu9-sudo/timetable/internal/model"
)

// InstructorRepository 교관 데이터 접근 인터페이스
type InstructorRepository interface {
	// FindOrCreate 이름으로 교관을 찾고 없으면 생성.
	// name 유니크 제약 + ON CONFLICT 로 동시 호출에도 중복이 생기지 않는다.
	FindOrCreate(ctx context.Context, name string) (*model.Instructor, error)
	GetByID(ctx context.Context, id string) (*model.Instructor, error)
	GetByName(ctx context.Context, name string) (*model.Instructor, error)
	List(ctx context.Context) ([]model.Instructor, error)
}

type instructorRepo struct {
	db *gorm.DB
}

// NewInstructorRepo InstructorRepository 인스턴스 생성
func NewInstructorRepo(db *gorm.DB) InstructorRepository {
	return &instructorRepo{db: db}
}

func (r *instructorRepo) FindOrCreate(ctx context.Context, name string) (*model.Instructor, error) {
	inst := &model.Instructor{Name: name}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(inst).Error
	if err != nil {
		return nil, err
	}

	// 충돌로 삽입이 무시된 경우 PK가 비어 있으므로 기존 행을 조회
	if inst.InstructorID == "" {
		return r.GetByName(ctx, name)
	}
	return inst, nil
}

func (r *instructorRepo) GetByID(ctx context.Context, id string) (*model.Instructor, error) {
	var inst model.Instructor
	err := r.db.WithContext(ctx).Where("instructor_id = ?", id).First(&inst).Error
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

func (r *instructorRepo) GetByName(ctx context.Context, name string) (*model.Instructor, error) {
	var inst model.Instructor
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&inst).Error
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

func (r *instructorRepo) List(ctx context.Context) ([]model.Instructor, error) {
	var instructors []model.Instructor
	err := r.db.WithContext(ctx).Order("name ASC").Find(&instructors).Error
	return instructors, err
}
