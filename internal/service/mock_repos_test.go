package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"

	"gorm.io/gorm"

	"github.com/jeunggu9-sudo/timetable/internal/model"
	"github.com/jeunggu9-sudo/timetable/pkg/excel"
)

// ── Mock InstructorRepository ──

type mockInstructorRepo struct {
	instructors map[string]*model.Instructor // name → instructor
	seq         int
	failOnName  string
}

func newMockInstructorRepo() *mockInstructorRepo {
	return &mockInstructorRepo{instructors: make(map[string]*model.Instructor)}
}

func (m *mockInstructorRepo) FindOrCreate(_ context.Context, name string) (*model.Instructor, error) {
	if m.failOnName != "" && name == m.failOnName {
		return nil, fmt.Errorf("db error on %s", name)
	}
	if inst, ok := m.instructors[name]; ok {
		return inst, nil
	}
	m.seq++
	inst := &model.Instructor{
		InstructorID: fmt.Sprintf("inst-%03d", m.seq),
		Name:         name,
	}
	m.instructors[name] = inst
	return inst, nil
}

func (m *mockInstructorRepo) GetByID(_ context.Context, id string) (*model.Instructor, error) {
	for _, inst := range m.instructors {
		if inst.InstructorID == id {
			return inst, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInstructorRepo) GetByName(_ context.Context, name string) (*model.Instructor, error) {
	if inst, ok := m.instructors[name]; ok {
		return inst, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInstructorRepo) List(_ context.Context) ([]model.Instructor, error) {
	var result []model.Instructor
	for _, inst := range m.instructors {
		result = append(result, *inst)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// ── Mock OffDayRepository ──

type mockOffDayRepo struct {
	offDays    map[string]*model.OffDay // instructorID|date → offDay
	seq        int
	failOnDate string // 해당 날짜 저장 시 오류를 흉내
}

func newMockOffDayRepo() *mockOffDayRepo {
	return &mockOffDayRepo{offDays: make(map[string]*model.OffDay)}
}

func offDayKey(instructorID, date string) string {
	return instructorID + "|" + date
}

func (m *mockOffDayRepo) CreateIgnoreDuplicate(_ context.Context, offDay *model.OffDay) (bool, error) {
	date := offDay.Date.UTC().Format("2006-01-02")
	if m.failOnDate != "" && date == m.failOnDate {
		return false, fmt.Errorf("db error on %s", date)
	}
	key := offDayKey(offDay.InstructorID, date)
	if _, ok := m.offDays[key]; ok {
		return false, nil
	}
	m.seq++
	offDay.OffDayID = fmt.Sprintf("od-%03d", m.seq)
	stored := *offDay
	m.offDays[key] = &stored
	return true, nil
}

func (m *mockOffDayRepo) GetByID(_ context.Context, id string) (*model.OffDay, error) {
	for _, od := range m.offDays {
		if od.OffDayID == id {
			return od, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOffDayRepo) ListByInstructor(_ context.Context, instructorID string) ([]model.OffDay, error) {
	var result []model.OffDay
	for _, od := range m.offDays {
		if od.InstructorID == instructorID {
			result = append(result, *od)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (m *mockOffDayRepo) List(_ context.Context, offset, limit int) ([]model.OffDay, int64, error) {
	var all []model.OffDay
	for _, od := range m.offDays {
		all = append(all, *od)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Date.Before(all[j].Date) })

	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockOffDayRepo) Delete(_ context.Context, id string) error {
	for key, od := range m.offDays {
		if od.OffDayID == id {
			delete(m.offDays, key)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	courses []*model.Course
	seq     int
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{}
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	m.seq++
	course.CourseID = fmt.Sprintf("course-%03d", m.seq)
	stored := *course
	m.courses = append(m.courses, &stored)
	return nil
}

func (m *mockCourseRepo) List(_ context.Context) ([]model.Course, error) {
	result := make([]model.Course, 0, len(m.courses))
	for _, c := range m.courses {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ExcelOrder < result[j].ExcelOrder })
	return result, nil
}

func (m *mockCourseRepo) DeleteAll(_ context.Context) error {
	m.courses = nil
	return nil
}

// ── Fake Excel Codec ──

type fakeCodec struct {
	rows      [][]string
	decodeErr error
	encoded   []excel.Sheet
}

func (f *fakeCodec) Decode(_ io.Reader) ([][]string, error) {
	if f.decodeErr != nil {
		return nil, f.decodeErr
	}
	return f.rows, nil
}

func (f *fakeCodec) Encode(sheets []excel.Sheet) (*bytes.Buffer, error) {
	f.encoded = sheets
	return bytes.NewBufferString("xlsx"), nil
}
