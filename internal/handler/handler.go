package handler

import "github.com/zygggggg/blog/internal/service"

type Handler struct {
	albumService *service.AlbumService
	boardService *service.BoardService
}

func NewHandler(albumService *service.AlbumService, boardService *service.BoardService) *Handler {
	return &Handler{
		albumService: albumService,
		boardService: boardService,
	}
}
