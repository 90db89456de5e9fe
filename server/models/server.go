package models

func NewServer(id int, port string) *Server {
	return &Server{
		ID:   id,
		Port: port,
	}
}
