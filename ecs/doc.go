// Package ecs provides ECS adapters for marionette.
package ecs
