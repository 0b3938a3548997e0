package main

// General API documentation for swaggo. Run `swag init -g cmd/houseprice/docs.go -o docs` to regenerate.
//
// @title           houseprice API
// @version         1.0
// @description     Bengaluru house price estimates from a linear model over one-hot location features.
//
// @contact.name   houseprice maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
