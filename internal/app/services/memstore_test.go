package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/emrekoc/campushub/internal/app/models"
	"github.com/emrekoc/campushub/internal/app/repositories"
	"github.com/emrekoc/campushub/internal/pkg/apperrors"
)

// In-memory store fakes shared by the service tests. They mirror the
// repository error contracts (same sentinels, same uniqueness rules) so
// that the services exercise the exact paths they hit in production.

var testLogger = zerolog.Nop()

// memUserStore implements UserStore.
type memUserStore struct {
	nextID   int64
	users    map[int64]*models.User
	students []*models.StudentProfile
	faculty  []*models.FacultyProfile
	admins   []*models.AdminProfile
	heads    []*models.DepartmentHeadProfile
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[int64]*models.User)}
}

func (m *memUserStore) CreateWithProfile(_ context.Context, user *models.User, profile interface{}) error {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, user.Email) {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	m.users[user.ID] = user

	switch p := profile.(type) {
	case *models.StudentProfile:
		m.nextID++
		p.ID = m.nextID
		p.UserID = user.ID
		m.students = append(m.students, p)
	case *models.FacultyProfile:
		m.nextID++
		p.ID = m.nextID
		p.UserID = user.ID
		m.faculty = append(m.faculty, p)
	case *models.AdminProfile:
		m.nextID++
		p.ID = m.nextID
		p.UserID = user.ID
		m.admins = append(m.admins, p)
	case *models.DepartmentHeadProfile:
		m.nextID++
		p.ID = m.nextID
		p.UserID = user.ID
		m.heads = append(m.heads, p)
	}
	return nil
}

func (m *memUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (m *memUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *memUserStore) GetByAccessCode(_ context.Context, accessCode string) (*models.User, error) {
	for _, u := range m.users {
		if u.AccessCode == accessCode {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *memUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	return err == nil, nil
}

func (m *memUserStore) CountUsers(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

func (m *memUserStore) List(_ context.Context, role *models.RoleType, email, name *string, limit, offset int) ([]*models.User, int, error) {
	var matched []*models.User
	for _, u := range m.users {
		if role != nil && u.Role != *role {
			continue
		}
		if email != nil && !strings.Contains(strings.ToLower(u.Email), strings.ToLower(*email)) {
			continue
		}
		if name != nil {
			full := strings.ToLower(u.FirstName + " " + u.LastName)
			if !strings.Contains(full, strings.ToLower(*name)) {
				continue
			}
		}
		matched = append(matched, u)
	}
	total := len(matched)
	if offset >= len(matched) {
		return nil, total, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (m *memUserStore) UpdateProfile(_ context.Context, userID int64, firstName, lastName, email string) error {
	user, ok := m.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.FirstName = firstName
	user.LastName = lastName
	user.Email = email
	return nil
}

func (m *memUserStore) UpdateLastLogin(_ context.Context, userID int64) error {
	user, ok := m.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	now := time.Now()
	user.LastLogin = &now
	return nil
}

func (m *memUserStore) SetPassword(_ context.Context, userID int64, passwordHash string) error {
	user, ok := m.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Password = passwordHash
	return nil
}

func (m *memUserStore) Delete(_ context.Context, id int64) error {
	if _, ok := m.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *memUserStore) GetStudentProfileByUserID(_ context.Context, userID int64) (*models.StudentProfile, error) {
	for _, p := range m.students {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, apperrors.ErrProfileNotFound
}

func (m *memUserStore) GetFacultyProfileByUserID(_ context.Context, userID int64) (*models.FacultyProfile, error) {
	for _, p := range m.faculty {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, apperrors.ErrProfileNotFound
}

func (m *memUserStore) GetAdminProfileByUserID(_ context.Context, userID int64) (*models.AdminProfile, error) {
	for _, p := range m.admins {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, apperrors.ErrProfileNotFound
}

func (m *memUserStore) GetDepartmentHeadProfileByUserID(_ context.Context, userID int64) (*models.DepartmentHeadProfile, error) {
	for _, p := range m.heads {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, apperrors.ErrProfileNotFound
}

func (m *memUserStore) studentByProfileID(id int64) *models.StudentProfile {
	for _, p := range m.students {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// memCatalog implements CourseStore, ApprovalStore and CourseReader over
// the same course set, so an approval decision is visible to enrollment
// checks the way the transactional repository makes it.
type memCatalog struct {
	nextID    int64
	courses   map[int64]*models.Course
	approvals map[int64]*models.CourseApproval
}

func newMemCatalog() *memCatalog {
	return &memCatalog{
		courses:   make(map[int64]*models.Course),
		approvals: make(map[int64]*models.CourseApproval),
	}
}

func (m *memCatalog) CreateWithApproval(_ context.Context, course *models.Course, approval *models.CourseApproval) error {
	for _, c := range m.courses {
		if c.CourseCode == course.CourseCode {
			return apperrors.ErrCourseCodeAlreadyExists
		}
	}
	m.nextID++
	course.ID = m.nextID
	course.CreatedAt = time.Now()
	m.courses[course.ID] = course

	if approval != nil {
		m.nextID++
		approval.ID = m.nextID
		approval.CourseID = course.ID
		approval.RequestedAt = time.Now()
		approval.Course = course
		m.approvals[approval.ID] = approval
	}
	return nil
}

func (m *memCatalog) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := m.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

func (m *memCatalog) GetByCode(_ context.Context, courseCode string) (*models.Course, error) {
	for _, c := range m.courses {
		if c.CourseCode == courseCode {
			return c, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (m *memCatalog) CodeExists(ctx context.Context, courseCode string) (bool, error) {
	_, err := m.GetByCode(ctx, courseCode)
	return err == nil, nil
}

func (m *memCatalog) List(_ context.Context, filter repositories.CourseFilter) ([]*models.Course, error) {
	var matched []*models.Course
	for _, c := range m.courses {
		if filter.Department != nil && c.Department != *filter.Department {
			continue
		}
		if filter.IsActive != nil && c.IsActive != *filter.IsActive {
			continue
		}
		if filter.Search != nil {
			needle := strings.ToLower(*filter.Search)
			if !strings.Contains(strings.ToLower(c.Title), needle) &&
				!strings.Contains(strings.ToLower(c.CourseCode), needle) {
				continue
			}
		}
		if filter.Credits != nil && c.Credits != *filter.Credits {
			continue
		}
		if filter.MinCapacity != nil && c.Capacity < *filter.MinCapacity {
			continue
		}
		if filter.MaxCapacity != nil && c.Capacity > *filter.MaxCapacity {
			continue
		}
		matched = append(matched, c)
	}
	return matched, nil
}

func (m *memCatalog) Update(_ context.Context, course *models.Course) error {
	if _, ok := m.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	m.courses[course.ID] = course
	return nil
}

func (m *memCatalog) Delete(_ context.Context, id int64) error {
	if _, ok := m.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(m.courses, id)
	return nil
}

func (m *memCatalog) GetApprovalByID(_ context.Context, id int64) (*models.CourseApproval, error) {
	approval, ok := m.approvals[id]
	if !ok {
		return nil, apperrors.ErrApprovalNotFound
	}
	return approval, nil
}

// approvalView adapts memCatalog to the ApprovalStore method set, whose
// GetByID collides with the course one.
type approvalView struct {
	catalog *memCatalog
}

func (v approvalView) GetByID(ctx context.Context, id int64) (*models.CourseApproval, error) {
	return v.catalog.GetApprovalByID(ctx, id)
}

func (v approvalView) List(_ context.Context, status *models.ApprovalStatus) ([]*models.CourseApproval, error) {
	var matched []*models.CourseApproval
	for _, a := range v.catalog.approvals {
		if status != nil && a.Status != *status {
			continue
		}
		matched = append(matched, a)
	}
	return matched, nil
}

func (v approvalView) ListByRequester(_ context.Context, requestedBy int64) ([]*models.CourseApproval, error) {
	var matched []*models.CourseApproval
	for _, a := range v.catalog.approvals {
		if a.RequestedBy == requestedBy {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func (v approvalView) Decide(_ context.Context, approvalID int64, status models.ApprovalStatus, decidedBy int64, comments *string) (*models.CourseApproval, error) {
	approval, ok := v.catalog.approvals[approvalID]
	if !ok {
		return nil, apperrors.ErrApprovalNotFound
	}
	if approval.Status.Decided() {
		return nil, apperrors.ErrApprovalAlreadyDecided
	}
	approval.Status = status
	approval.ApprovedBy = &decidedBy
	approval.Comments = comments
	approval.UpdatedAt = time.Now()
	if course, ok := v.catalog.courses[approval.CourseID]; ok {
		course.IsActive = status == models.ApprovalApproved
	}
	return approval, nil
}

// memEnrollmentStore implements EnrollmentStore, EnrollmentChecker and
// RosterReader. It resolves course codes and student profiles through the
// shared catalog and user store.
type memEnrollmentStore struct {
	nextID      int64
	enrollments []*models.Enrollment
	catalog     *memCatalog
	users       *memUserStore
}

func newMemEnrollmentStore(catalog *memCatalog, users *memUserStore) *memEnrollmentStore {
	return &memEnrollmentStore{catalog: catalog, users: users}
}

func (m *memEnrollmentStore) Create(_ context.Context, enrollment *models.Enrollment) error {
	for _, e := range m.enrollments {
		if e.StudentID == enrollment.StudentID && e.CourseID == enrollment.CourseID {
			return apperrors.ErrAlreadyEnrolled
		}
	}
	m.nextID++
	enrollment.ID = m.nextID
	enrollment.EnrollmentDate = time.Now()
	m.enrollments = append(m.enrollments, enrollment)
	return nil
}

func (m *memEnrollmentStore) Delete(_ context.Context, studentID, courseID int64) error {
	for i, e := range m.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			m.enrollments = append(m.enrollments[:i], m.enrollments[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrEnrollmentNotFound
}

func (m *memEnrollmentStore) Exists(_ context.Context, studentID, courseID int64) (bool, error) {
	for _, e := range m.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memEnrollmentStore) CountByCourse(_ context.Context, courseID int64) (int, error) {
	count := 0
	for _, e := range m.enrollments {
		if e.CourseID == courseID {
			count++
		}
	}
	return count, nil
}

func (m *memEnrollmentStore) ListByStudent(_ context.Context, studentID int64) ([]*models.Enrollment, error) {
	var matched []*models.Enrollment
	for _, e := range m.enrollments {
		if e.StudentID == studentID {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

func (m *memEnrollmentStore) EnrolledCourseCodes(_ context.Context, studentID int64) ([]string, error) {
	var codes []string
	for _, e := range m.enrollments {
		if e.StudentID != studentID {
			continue
		}
		if course, ok := m.catalog.courses[e.CourseID]; ok {
			codes = append(codes, course.CourseCode)
		}
	}
	return codes, nil
}

func (m *memEnrollmentStore) ListStudentsByCourse(_ context.Context, courseID int64) ([]*models.StudentProfile, error) {
	var students []*models.StudentProfile
	for _, e := range m.enrollments {
		if e.CourseID != courseID {
			continue
		}
		if p := m.users.studentByProfileID(e.StudentID); p != nil {
			students = append(students, p)
		}
	}
	return students, nil
}

// memNotificationStore implements NotificationStore.
type memNotificationStore struct {
	nextID        int64
	notifications []*models.Notification
}

func (m *memNotificationStore) Create(_ context.Context, notification *models.Notification) error {
	m.nextID++
	notification.ID = m.nextID
	notification.CreatedAt = time.Now()
	m.notifications = append(m.notifications, notification)
	return nil
}

func (m *memNotificationStore) ListByUser(_ context.Context, userID int64, unreadOnly bool) ([]*models.Notification, error) {
	var matched []*models.Notification
	for _, n := range m.notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		matched = append(matched, n)
	}
	return matched, nil
}

func (m *memNotificationStore) CountUnread(_ context.Context, userID int64) (int, error) {
	count := 0
	for _, n := range m.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (m *memNotificationStore) MarkRead(_ context.Context, id, userID int64) error {
	for _, n := range m.notifications {
		if n.ID == id && n.UserID == userID {
			n.Read = true
			return nil
		}
	}
	return apperrors.ErrNotificationNotFound
}

func (m *memNotificationStore) MarkAllRead(_ context.Context, userID int64) error {
	for _, n := range m.notifications {
		if n.UserID == userID {
			n.Read = true
		}
	}
	return nil
}

func (m *memNotificationStore) Delete(_ context.Context, id, userID int64) error {
	for i, n := range m.notifications {
		if n.ID == id && n.UserID == userID {
			m.notifications = append(m.notifications[:i], m.notifications[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotificationNotFound
}

// memFacultyCourseStore implements FacultyCourseStore.
type memFacultyCourseStore struct {
	nextID      int64
	assignments []*models.FacultyCourse
}

func (m *memFacultyCourseStore) Create(_ context.Context, fc *models.FacultyCourse) error {
	for _, a := range m.assignments {
		if a.FacultyID == fc.FacultyID && a.CourseID == fc.CourseID && a.Semester == fc.Semester {
			return apperrors.ErrFacultyCourseAlreadyExists
		}
	}
	m.nextID++
	fc.ID = m.nextID
	fc.CreatedAt = time.Now()
	m.assignments = append(m.assignments, fc)
	return nil
}

func (m *memFacultyCourseStore) GetByID(_ context.Context, id int64) (*models.FacultyCourse, error) {
	for _, a := range m.assignments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, apperrors.ErrFacultyCourseNotFound
}

func (m *memFacultyCourseStore) ListByFaculty(_ context.Context, facultyID int64) ([]*models.FacultyCourse, error) {
	var matched []*models.FacultyCourse
	for _, a := range m.assignments {
		if a.FacultyID == facultyID {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func (m *memFacultyCourseStore) IsAssigned(_ context.Context, facultyID, courseID int64) (bool, error) {
	for _, a := range m.assignments {
		if a.FacultyID == facultyID && a.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

// memAttendanceStore implements AttendanceStore.
type memAttendanceStore struct {
	nextID  int64
	records []*models.Attendance
}

func (m *memAttendanceStore) Create(_ context.Context, attendance *models.Attendance) error {
	for _, r := range m.records {
		if r.FacultyCourseID == attendance.FacultyCourseID &&
			r.StudentID == attendance.StudentID &&
			r.Date.Equal(attendance.Date) {
			return apperrors.ErrAttendanceAlreadyRecorded
		}
	}
	m.nextID++
	attendance.ID = m.nextID
	attendance.CreatedAt = time.Now()
	m.records = append(m.records, attendance)
	return nil
}

func (m *memAttendanceStore) GetByID(_ context.Context, id int64) (*models.Attendance, error) {
	for _, r := range m.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, apperrors.ErrAttendanceNotFound
}

func (m *memAttendanceStore) ListByFacultyCourse(_ context.Context, facultyCourseID int64, date *time.Time) ([]*models.Attendance, error) {
	var matched []*models.Attendance
	for _, r := range m.records {
		if r.FacultyCourseID != facultyCourseID {
			continue
		}
		if date != nil && !r.Date.Equal(*date) {
			continue
		}
		matched = append(matched, r)
	}
	return matched, nil
}

func (m *memAttendanceStore) ListByStudent(_ context.Context, studentID int64) ([]*models.Attendance, error) {
	var matched []*models.Attendance
	for _, r := range m.records {
		if r.StudentID == studentID {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

func (m *memAttendanceStore) UpdateStatus(_ context.Context, id int64, status models.AttendanceStatus, remarks *string) error {
	for _, r := range m.records {
		if r.ID == id {
			r.Status = status
			if remarks != nil {
				r.Remarks = remarks
			}
			return nil
		}
	}
	return apperrors.ErrAttendanceNotFound
}

// memMaterialStore implements MaterialStore.
type memMaterialStore struct {
	nextID    int64
	materials []*models.CourseMaterial
}

func (m *memMaterialStore) Create(_ context.Context, material *models.CourseMaterial) error {
	m.nextID++
	material.ID = m.nextID
	material.CreatedAt = time.Now()
	m.materials = append(m.materials, material)
	return nil
}

func (m *memMaterialStore) GetByID(_ context.Context, id int64) (*models.CourseMaterial, error) {
	for _, mat := range m.materials {
		if mat.ID == id {
			return mat, nil
		}
	}
	return nil, apperrors.ErrMaterialNotFound
}

func (m *memMaterialStore) ListByCourse(_ context.Context, courseID int64, publishedOnly bool) ([]*models.CourseMaterial, error) {
	var matched []*models.CourseMaterial
	for _, mat := range m.materials {
		if mat.CourseID != courseID {
			continue
		}
		if publishedOnly && !mat.IsPublished {
			continue
		}
		matched = append(matched, mat)
	}
	return matched, nil
}

func (m *memMaterialStore) Update(_ context.Context, material *models.CourseMaterial) error {
	for i, mat := range m.materials {
		if mat.ID == material.ID {
			m.materials[i] = material
			return nil
		}
	}
	return apperrors.ErrMaterialNotFound
}

func (m *memMaterialStore) Delete(_ context.Context, id int64) error {
	for i, mat := range m.materials {
		if mat.ID == id {
			m.materials = append(m.materials[:i], m.materials[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrMaterialNotFound
}

func (m *memMaterialStore) IncrementViews(_ context.Context, id int64) error {
	for _, mat := range m.materials {
		if mat.ID == id {
			mat.Views++
			return nil
		}
	}
	return apperrors.ErrMaterialNotFound
}

// memAssignmentStore implements AssignmentStore.
type memAssignmentStore struct {
	nextID      int64
	assignments []*models.Assignment
	submissions []*models.AssignmentSubmission
}

func (m *memAssignmentStore) Create(_ context.Context, assignment *models.Assignment) error {
	m.nextID++
	assignment.ID = m.nextID
	assignment.CreatedAt = time.Now()
	m.assignments = append(m.assignments, assignment)
	return nil
}

func (m *memAssignmentStore) GetByID(_ context.Context, id int64) (*models.Assignment, error) {
	for _, a := range m.assignments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, apperrors.ErrAssignmentNotFound
}

func (m *memAssignmentStore) ListByCourse(_ context.Context, courseID int64) ([]*models.Assignment, error) {
	var matched []*models.Assignment
	for _, a := range m.assignments {
		if a.CourseID == courseID {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func (m *memAssignmentStore) ListByStudentCourses(_ context.Context, _ int64) ([]*models.Assignment, error) {
	return m.assignments, nil
}

func (m *memAssignmentStore) UpsertSubmission(_ context.Context, submission *models.AssignmentSubmission) error {
	for i, s := range m.submissions {
		if s.AssignmentID == submission.AssignmentID && s.StudentID == submission.StudentID {
			submission.ID = s.ID
			submission.SubmissionDate = time.Now()
			submission.Grade = nil
			submission.Feedback = nil
			submission.GradedBy = nil
			submission.GradedAt = nil
			m.submissions[i] = submission
			return nil
		}
	}
	m.nextID++
	submission.ID = m.nextID
	submission.SubmissionDate = time.Now()
	m.submissions = append(m.submissions, submission)
	return nil
}

func (m *memAssignmentStore) GetSubmission(_ context.Context, assignmentID, studentID int64) (*models.AssignmentSubmission, error) {
	for _, s := range m.submissions {
		if s.AssignmentID == assignmentID && s.StudentID == studentID {
			return s, nil
		}
	}
	return nil, apperrors.ErrSubmissionNotFound
}

func (m *memAssignmentStore) GetSubmissionByID(_ context.Context, id int64) (*models.AssignmentSubmission, error) {
	for _, s := range m.submissions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, apperrors.ErrSubmissionNotFound
}

func (m *memAssignmentStore) ListSubmissions(_ context.Context, assignmentID int64) ([]*models.AssignmentSubmission, error) {
	var matched []*models.AssignmentSubmission
	for _, s := range m.submissions {
		if s.AssignmentID == assignmentID {
			matched = append(matched, s)
		}
	}
	return matched, nil
}

func (m *memAssignmentStore) GradeSubmission(_ context.Context, id int64, grade float64, feedback *string, gradedBy int64) error {
	for _, s := range m.submissions {
		if s.ID == id {
			now := time.Now()
			s.Grade = &grade
			s.Feedback = feedback
			s.GradedBy = &gradedBy
			s.GradedAt = &now
			s.Status = models.SubmissionStatusGraded
			return nil
		}
	}
	return apperrors.ErrSubmissionNotFound
}

// memPolicyStore implements PolicyStore.
type memPolicyStore struct {
	nextID   int64
	policies map[int64]*models.Policy
}

func newMemPolicyStore() *memPolicyStore {
	return &memPolicyStore{policies: make(map[int64]*models.Policy)}
}

func (m *memPolicyStore) Create(_ context.Context, policy *models.Policy) error {
	m.nextID++
	policy.ID = m.nextID
	policy.CreatedAt = time.Now()
	m.policies[policy.ID] = policy
	return nil
}

func (m *memPolicyStore) GetByID(_ context.Context, id int64) (*models.Policy, error) {
	policy, ok := m.policies[id]
	if !ok {
		return nil, apperrors.ErrPolicyNotFound
	}
	return policy, nil
}

func (m *memPolicyStore) List(_ context.Context, department *string, activeOnly bool) ([]*models.Policy, error) {
	var matched []*models.Policy
	for _, p := range m.policies {
		if department != nil && p.Department != *department {
			continue
		}
		if activeOnly && !p.IsActive {
			continue
		}
		matched = append(matched, p)
	}
	return matched, nil
}

func (m *memPolicyStore) Update(_ context.Context, policy *models.Policy) error {
	if _, ok := m.policies[policy.ID]; !ok {
		return apperrors.ErrPolicyNotFound
	}
	m.policies[policy.ID] = policy
	return nil
}

func (m *memPolicyStore) Delete(_ context.Context, id int64) error {
	if _, ok := m.policies[id]; !ok {
		return apperrors.ErrPolicyNotFound
	}
	delete(m.policies, id)
	return nil
}

// memReportStore implements ReportStore.
type memReportStore struct {
	nextID  int64
	reports map[int64]*models.Report
}

func newMemReportStore() *memReportStore {
	return &memReportStore{reports: make(map[int64]*models.Report)}
}

func (m *memReportStore) Create(_ context.Context, report *models.Report) error {
	m.nextID++
	report.ID = m.nextID
	report.CreatedAt = time.Now()
	m.reports[report.ID] = report
	return nil
}

func (m *memReportStore) GetByID(_ context.Context, id int64) (*models.Report, error) {
	report, ok := m.reports[id]
	if !ok {
		return nil, apperrors.ErrReportNotFound
	}
	return report, nil
}

func (m *memReportStore) List(_ context.Context, department *string, reportType *models.ReportType) ([]*models.Report, error) {
	var matched []*models.Report
	for _, r := range m.reports {
		if department != nil && r.Department != *department {
			continue
		}
		if reportType != nil && r.Type != *reportType {
			continue
		}
		matched = append(matched, r)
	}
	return matched, nil
}

func (m *memReportStore) Update(_ context.Context, report *models.Report) error {
	if _, ok := m.reports[report.ID]; !ok {
		return apperrors.ErrReportNotFound
	}
	m.reports[report.ID] = report
	return nil
}

func (m *memReportStore) Delete(_ context.Context, id int64) error {
	if _, ok := m.reports[id]; !ok {
		return apperrors.ErrReportNotFound
	}
	delete(m.reports, id)
	return nil
}

// memAnalyticsStore implements AnalyticsStore with canned figures.
type memAnalyticsStore struct {
	stats   map[string]*repositories.DepartmentStats
	popular map[string][]repositories.PopularCourse
}

func (m *memAnalyticsStore) DepartmentStats(_ context.Context, department string) (*repositories.DepartmentStats, error) {
	if stats, ok := m.stats[department]; ok {
		return stats, nil
	}
	return &repositories.DepartmentStats{}, nil
}

func (m *memAnalyticsStore) PopularCourses(_ context.Context, department string, _ int) ([]repositories.PopularCourse, error) {
	return m.popular[department], nil
}
