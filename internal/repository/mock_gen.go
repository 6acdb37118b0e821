// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./repository.go -destination=../mocks/mock_transaction.go -package=mocks Transaction
//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./idea.go -destination=../mocks/mock_idea_repository.go -package=mocks IdeaRepositoryIface
//go:generate mockgen -source=./rating.go -destination=../mocks/mock_rating_repository.go -package=mocks RatingRepositoryIface
//go:generate mockgen -source=./team_request.go -destination=../mocks/mock_team_request_repository.go -package=mocks TeamRequestRepositoryIface
//go:generate mockgen -source=./notification.go -destination=../mocks/mock_notification_repository.go -package=mocks NotificationRepositoryIface
