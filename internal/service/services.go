package service

import (
	"github.com/karla-codes/rest-api/internal/service/account"
	"github.com/karla-codes/rest-api/internal/service/course"
)

type Collection struct {
	AccountService *account.Service
	CourseService  *course.Service
}
