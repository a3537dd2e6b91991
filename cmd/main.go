package main

import (
	"github.com/ordersapi/orders-svc/internal/app"
	"github.com/ordersapi/orders-svc/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
