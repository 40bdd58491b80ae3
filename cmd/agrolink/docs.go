package main

// @title AgroLink State Service API
// @version 1.0
// @description Client-state service for the AgroLink farmers marketplace: session, favorites, cart and basket containers with write-through persistence, plus the read-only catalog directory.

// @contact.name API Support

// @license.name MIT

// @host localhost:8085
// @BasePath /

// @tag.name Auth
// @tag.description Registration and login against the auth collaborator

// @tag.name Session
// @tag.description Session state container

// @tag.name Favorites
// @tag.description Favorite yields and posts

// @tag.name Cart
// @tag.description Cart and basket line items

// @tag.name Catalog
// @tag.description Read-only catalog, feed and farmer directory
