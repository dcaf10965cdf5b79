package usecase

import (
	"context"

	"holistic-daily/internal/dailytask/repository"
	"holistic-daily/internal/model"
)

type mockRepo struct {
	tasks       map[string][]model.Task // key: user|date
	prefs       model.UserPreferences
	fetchErr    error
	createErr   error
	updateErr   error
	prefsErr    error
	createCalls int
	completions []repository.SetCompletionOptions
	feedbacks   []repository.SetFeedbackOptions
}

func newMockRepo() *mockRepo {
	return &mockRepo{tasks: map[string][]model.Task{}}
}

func (m *mockRepo) FetchTasksForDate(_ context.Context, opt repository.FetchTasksOptions) ([]model.Task, error) {
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return append([]model.Task{}, m.tasks[opt.UserID+"|"+opt.Date]...), nil
}

func (m *mockRepo) CreateTasks(_ context.Context, tasks []model.Task) error {
	m.createCalls++
	if m.createErr != nil {
		return m.createErr
	}
	for _, t := range tasks {
		key := t.UserID + "|" + t.Date
		m.tasks[key] = append(m.tasks[key], t)
	}
	return nil
}

func (m *mockRepo) SetTaskCompletion(_ context.Context, opt repository.SetCompletionOptions) error {
	m.completions = append(m.completions, opt)
	return m.updateErr
}

func (m *mockRepo) SetTaskFeedback(_ context.Context, opt repository.SetFeedbackOptions) error {
	m.feedbacks = append(m.feedbacks, opt)
	return m.updateErr
}

func (m *mockRepo) FetchPreferences(context.Context, string) (model.UserPreferences, error) {
	return m.prefs, m.prefsErr
}

func (m *mockRepo) SavePreferences(_ context.Context, prefs model.UserPreferences) error {
	m.prefs = prefs
	return m.prefsErr
}

type mockGenerator struct {
	calls int
}

func (g *mockGenerator) GenerateFor(userID, date string) []model.Task {
	g.calls++
	tasks := make([]model.Task, 0, len(model.Categories))
	for _, cat := range model.Categories {
		tasks = append(tasks, model.Task{
			ID:       userID + "-" + string(cat),
			Title:    "Do " + string(cat),
			Category: cat,
			Date:     date,
			UserID:   userID,
		})
	}
	return tasks
}
