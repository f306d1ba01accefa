package main

import (
	"github.com/jyothi044/ShopEase-ecommerce/internal/app"
	"github.com/jyothi044/ShopEase-ecommerce/internal/config"
)

// @title ShopEase storefront API
// @version 1.0
// @BasePath /api
func main() {
	config.MustInit()
	app.MustNewStorefrontApp().Run()
}
