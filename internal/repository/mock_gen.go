// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./organisation.go -destination=../mocks/mock_organisation_repository.go -package=mocks OrganisationRepositoryIface
//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./employee.go -destination=../mocks/mock_employee_repository.go -package=mocks EmployeeRepositoryIface
//go:generate mockgen -source=./team.go -destination=../mocks/mock_team_repository.go -package=mocks TeamRepositoryIface
//go:generate mockgen -source=./assignment.go -destination=../mocks/mock_assignment_repository.go -package=mocks AssignmentRepositoryIface
//go:generate mockgen -source=./log.go -destination=../mocks/mock_log_repository.go -package=mocks LogRepositoryIface
