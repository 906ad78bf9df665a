package activation

import (
	"context"
	"fmt"
	"registration/internal/core/domain/user"
	"sync"
)

type FakeKeyGenerator struct {
	Key         Key
	ReturnError bool
}

func NewFakeKeyGenerator(key string) *FakeKeyGenerator {
	return &FakeKeyGenerator{Key: Key(key)}
}

func (g *FakeKeyGenerator) GenerateKey(u user.User) (Key, error) {
	if g.ReturnError {
		return Key(""), fmt.Errorf("could not generate activation key for user %d", u.ID)
	}
	return g.Key, nil
}

type FakeProfileRepository struct {
	Profiles    []Profile
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeProfileRepository() *FakeProfileRepository {
	return &FakeProfileRepository{Profiles: make([]Profile, 0, 10)}
}

// Clone returns an independent copy, used by the fake unit of work to stage writes.
func (r *FakeProfileRepository) Clone() *FakeProfileRepository {
	r.lock.Lock()
	defer r.lock.Unlock()
	profiles := make([]Profile, len(r.Profiles))
	copy(profiles, r.Profiles)
	return &FakeProfileRepository{Profiles: profiles, ReturnError: r.ReturnError}
}

// Replace takes over the state of the other repository.
func (r *FakeProfileRepository) Replace(other *FakeProfileRepository) {
	other.lock.Lock()
	profiles := make([]Profile, len(other.Profiles))
	copy(profiles, other.Profiles)
	other.lock.Unlock()

	r.lock.Lock()
	defer r.lock.Unlock()
	r.Profiles = profiles
}

func (r *FakeProfileRepository) Create(ctx context.Context, input CreateProfileInput) (p Profile, err error) {
	if r.ReturnError {
		return p, fmt.Errorf("could not create profile for user %d", input.UserID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ProfileID(0)
	for _, p := range r.Profiles {
		if p.UserID == input.UserID {
			return Profile{}, ErrProfileAlreadyExists
		}
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	p = Profile{ID: maxID + 1, UserID: input.UserID, Key: input.Key}
	r.Profiles = append(r.Profiles, p)
	return p, nil
}

func (r *FakeProfileRepository) GetByKey(ctx context.Context, key Key) (p Profile, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, p := range r.Profiles {
		if p.Key == key {
			return p, nil
		}
	}
	return p, ErrProfileDoesNotExist
}

func (r *FakeProfileRepository) GetByKeyWithLock(ctx context.Context, key Key) (Profile, error) {
	return r.GetByKey(ctx, key)
}

func (r *FakeProfileRepository) GetByUserID(ctx context.Context, userID user.ID) (p Profile, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, p := range r.Profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return p, ErrProfileDoesNotExist
}

func (r *FakeProfileRepository) SetKey(ctx context.Context, id ProfileID, key Key) (p Profile, err error) {
	if r.ReturnError {
		return p, fmt.Errorf("could not update profile %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, p := range r.Profiles {
		if p.ID == id {
			r.Profiles[ix].Key = key
			return r.Profiles[ix], nil
		}
	}
	return p, ErrProfileDoesNotExist
}

func (r *FakeProfileRepository) Count() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.Profiles)
}

type FakeTemplateRenderer struct {
	Subject     string
	ReturnError bool
	Rendered    []TemplateData
}

func NewFakeTemplateRenderer(subject string) *FakeTemplateRenderer {
	return &FakeTemplateRenderer{Subject: subject}
}

func (r *FakeTemplateRenderer) Render(name TemplateName, data TemplateData) (string, error) {
	if r.ReturnError {
		return "", fmt.Errorf("could not render template %s", name)
	}
	r.Rendered = append(r.Rendered, data)
	if name == SubjectTemplate {
		return r.Subject, nil
	}
	return fmt.Sprintf(
		"Activate your %s account: %s (valid for %d days)",
		data.Site.Name,
		data.ActivationKey,
		data.ExpirationDays,
	), nil
}

type FakeMailer struct {
	Sent        []Message
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeMailer() *FakeMailer {
	return &FakeMailer{}
}

func (m *FakeMailer) Send(ctx context.Context, message Message) error {
	if m.ReturnError {
		return fmt.Errorf("could not send message to %s", message.To)
	}
	m.lock.Lock()
	defer m.lock.Unlock()
	m.Sent = append(m.Sent, message)
	return nil
}

func (m *FakeMailer) SentCount() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return len(m.Sent)
}

func (m *FakeMailer) LastSent() Message {
	m.lock.Lock()
	defer m.lock.Unlock()
	l := len(m.Sent)
	if l == 0 {
		panic("Sent count is 0.")
	}
	return m.Sent[l-1]
}
