package repository

import "context"

// RepositoryFactory creates repository instances bound to one transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewFriendshipRepository() FriendshipRepository
	NewNotificationRepository() NotificationRepository
}

// TransactionManager runs multi-repository operations atomically. Accepting
// a friend request, for example, flips the request status, creates the
// friendship row and notifies the requester in one transaction.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
