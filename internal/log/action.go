package log

type Action = string

const (
	ListAuthors     Action = "ListAuthors"
	CreateAuthor           = "CreateAuthor"
	GetAuthorByName        = "GetAuthorByName"
	UpdateAuthor           = "UpdateAuthor"
	DeleteAuthor           = "DeleteAuthor"

	ListBooks        = "ListBooks"
	GetBook          = "GetBook"
	ListAuthorBooks  = "ListAuthorBooks"
	CreateBook       = "CreateBook"
	UpdateBook       = "UpdateBook"
	DeleteBook       = "DeleteBook"
	AddBookAuthor    = "AddBookAuthor"
	RemoveBookAuthor = "RemoveBookAuthor"

	ListRenters  = "ListRenters"
	CreateRenter = "CreateRenter"
	UpdateRenter = "UpdateRenter"
	DeleteRenter = "DeleteRenter"

	ListRentals        = "ListRentals"
	CreateRental       = "CreateRental"
	UpdateRental       = "UpdateRental"
	DeleteRental       = "DeleteRental"
	ListAvailableBooks = "ListAvailableBooks"
	ListRentedBooks    = "ListRentedBooks"
	ListRenterBooks    = "ListRenterBooks"
)
