package util

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParamsToMap binds the JSON body of the request into a T.
func ParamsToMap[T any](c *gin.Context) (T, error) {
	var params T

	if err := c.ShouldBindJSON(&params); err != nil {
		return params, err
	}

	return params, nil
}

// ParamID parses the named path parameter as a base 10 integer.
func ParamID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
