package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/domain"
	"github.com/aussiebroadwan/shepherd/internal/shepherd/store"
	"github.com/aussiebroadwan/shepherd/pkg/idx"
	"github.com/aussiebroadwan/shepherd/pkg/slogx"
)

type MemberService struct {
	Store store.Store
}

// MemberPage is one page of the member directory.
type MemberPage struct {
	Members []domain.Member
	Total   int
	Page    int
	Pages   int
}

func normalizeMember(m *domain.Member) {
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))
	m.FullName = strings.TrimSpace(m.FullName)
	if m.MembershipStatus == "" {
		m.MembershipStatus = domain.MembershipVisitor
	}
}

func (s *MemberService) Register(ctx context.Context, m domain.Member) (domain.Member, error) {
	normalizeMember(&m)
	if err := invalidFields(m.Validate()); err != nil {
		return domain.Member{}, err
	}

	m.ID = idx.New().String()
	m.IsArchived = false
	if err := s.Store.Members().CreateMember(ctx, m); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Member{}, ErrEmailTaken
		}
		return domain.Member{}, err
	}

	slogx.FromContext(ctx).Info("member registered", slog.String("member_id", m.ID))
	return s.Get(ctx, m.ID)
}

func (s *MemberService) Get(ctx context.Context, id string) (domain.Member, error) {
	m, err := s.Store.Members().GetMemberByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Member{}, ErrMemberNotFound
	}
	return m, err
}

// List returns non-archived members, newest first.
func (s *MemberService) List(ctx context.Context, page domain.Page) (MemberPage, error) {
	page = page.Normalize()
	members, total, err := s.Store.Members().ListMembers(ctx, page)
	if err != nil {
		return MemberPage{}, err
	}
	return MemberPage{
		Members: members,
		Total:   total,
		Page:    page.Number,
		Pages:   (total + page.Limit - 1) / page.Limit,
	}, nil
}

// Update applies patch to an active member and re-validates the result.
// Archived members are treated as missing.
func (s *MemberService) Update(ctx context.Context, id string, patch func(*domain.Member)) (domain.Member, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return domain.Member{}, err
	}
	if m.IsArchived {
		return domain.Member{}, ErrMemberNotFound
	}

	patch(&m)
	m.ID = id
	m.IsArchived = false
	normalizeMember(&m)
	if err := invalidFields(m.Validate()); err != nil {
		return domain.Member{}, err
	}

	if err := s.Store.Members().UpdateMember(ctx, m); err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.Member{}, ErrEmailTaken
		case errors.Is(err, store.ErrNotFound):
			return domain.Member{}, ErrMemberNotFound
		}
		return domain.Member{}, err
	}
	return s.Get(ctx, id)
}

// Archive hides a member from the directory without deleting the record.
func (s *MemberService) Archive(ctx context.Context, id string) error {
	if err := s.Store.Members().ArchiveMember(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMemberNotFound
		}
		return err
	}
	slogx.FromContext(ctx).Info("member archived", slog.String("member_id", id))
	return nil
}
