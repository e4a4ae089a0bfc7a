package services

import "diskusi-bisnis/models"

func requireOwner(actor models.Actor, authorID uint, message string) error {
	if !actor.CanModify(authorID) {
		return models.NewForbiddenError("%s", message)
	}
	return nil
}
