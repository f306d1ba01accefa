package main

import (
	"github.com/jyothi044/ShopEase-ecommerce/internal/app"
	"github.com/jyothi044/ShopEase-ecommerce/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewMailerApp().Run()
}
