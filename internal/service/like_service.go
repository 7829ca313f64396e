package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/mondedelice/bakery-backend/internal/models"
)

// BlogFinder expose la lecture d'une réalisation, nécessaire pour refuser
// les likes sur un blog inexistant.
type BlogFinder interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Blog, error)
}

// LikeStore expose les opérations de la table likes. Les transitions sont
// atomiques côté base: l'unicité (blog, IP) y est garantie, pas ici.
type LikeStore interface {
	Like(ctx context.Context, blogID uuid.UUID, ipAddress string, userAgent *string) (int, error)
	Unlike(ctx context.Context, blogID uuid.UUID, ipAddress string) (int, error)
	Exists(ctx context.Context, blogID uuid.UUID, ipAddress string) (bool, error)
}

// LikeBroadcaster pousse les nouveaux totaux aux clients connectés.
type LikeBroadcaster interface {
	BroadcastLikes(blogID uuid.UUID, likes int)
}

// LikeStatus est le résultat de la consultation du statut de like.
type LikeStatus struct {
	HasLiked   bool `json:"hasLiked"`
	TotalLikes int  `json:"totalLikes"`
}

// LikeService orchestre le protocole like/unlike entre un visiteur anonyme
// (identifié par IP) et une réalisation.
type LikeService struct {
	blogs BlogFinder
	likes LikeStore
	hub   LikeBroadcaster
}

// NewLikeService crée le service. hub peut être nil (pas de diffusion).
func NewLikeService(blogs BlogFinder, likes LikeStore, hub LikeBroadcaster) *LikeService {
	return &LikeService{
		blogs: blogs,
		likes: likes,
		hub:   hub,
	}
}

// Like ajoute un like et retourne le nouveau total. Remonte
// repository.ErrBlogNotFound si la réalisation n'existe pas et
// repository.ErrAlreadyLiked si ce visiteur a déjà liké, y compris quand il
// perd une course de double soumission.
func (s *LikeService) Like(ctx context.Context, blogID uuid.UUID, ipAddress string, userAgent *string) (int, error) {
	if _, err := s.blogs.GetByID(ctx, blogID); err != nil {
		return 0, err
	}

	total, err := s.likes.Like(ctx, blogID, ipAddress, userAgent)
	if err != nil {
		return 0, err
	}

	s.broadcast(blogID, total)
	return total, nil
}

// Unlike retire un like et retourne le nouveau total (plancher à zéro côté
// base). Remonte repository.ErrLikeNotFound si rien n'était à retirer.
func (s *LikeService) Unlike(ctx context.Context, blogID uuid.UUID, ipAddress string) (int, error) {
	if _, err := s.blogs.GetByID(ctx, blogID); err != nil {
		return 0, err
	}

	total, err := s.likes.Unlike(ctx, blogID, ipAddress)
	if err != nil {
		return 0, err
	}

	s.broadcast(blogID, total)
	return total, nil
}

// Status retourne le statut de like du visiteur et le total courant, sans
// aucune mutation.
func (s *LikeService) Status(ctx context.Context, blogID uuid.UUID, ipAddress string) (*LikeStatus, error) {
	blog, err := s.blogs.GetByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	hasLiked, err := s.likes.Exists(ctx, blogID, ipAddress)
	if err != nil {
		return nil, err
	}

	return &LikeStatus{
		HasLiked:   hasLiked,
		TotalLikes: blog.Likes,
	}, nil
}

func (s *LikeService) broadcast(blogID uuid.UUID, total int) {
	if s.hub != nil {
		s.hub.BroadcastLikes(blogID, total)
	}
}
