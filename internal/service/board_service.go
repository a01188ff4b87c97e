package service

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/zygggggg/blog/internal/common"
	"github.com/zygggggg/blog/internal/consts"
	"github.com/zygggggg/blog/internal/model"
	"github.com/zygggggg/blog/internal/repository"

	"gorm.io/gorm"
)

// BoardService 留言板业务。与相册共用同一套软删除姿势，但没有 blob 参与。
type BoardService struct {
	store repository.BoardStore
}

func NewBoardService(store repository.BoardStore) *BoardService {
	return &BoardService{store: store}
}

// Post 发表一条留言。昵称和内容都去首尾空白后校验非空和长度。
func (s *BoardService) Post(nickname, content string) (*model.BoardMessage, error) {
	nickname = strings.TrimSpace(nickname)
	content = strings.TrimSpace(content)

	if nickname == "" {
		return nil, common.NewValidationError("昵称不能为空")
	}
	if content == "" {
		return nil, common.NewValidationError("留言内容不能为空")
	}
	if utf8.RuneCountInString(nickname) > consts.MaxNicknameLength {
		return nil, common.NewValidationError(fmt.Sprintf("昵称不能超过%d个字符", consts.MaxNicknameLength))
	}
	if utf8.RuneCountInString(content) > consts.MaxContentLength {
		return nil, common.NewValidationError(fmt.Sprintf("留言内容不能超过%d个字符", consts.MaxContentLength))
	}

	message := model.BoardMessage{
		Nickname:   nickname,
		Content:    content,
		CreateTime: time.Now(),
	}

	if err := s.store.Create(&message); err != nil {
		return nil, common.NewPersistenceError("发表留言失败")
	}

	return &message, nil
}

// List 分页返回未删除留言，按 create_time 降序排列。
func (s *BoardService) List(page, size int) ([]model.BoardMessage, int64, int, int, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = consts.DefaultBoardPageSize
	}
	if size > consts.MaxPageSize {
		size = consts.MaxPageSize
	}

	messages, total, err := s.store.ListLive((page-1)*size, size)
	if err != nil {
		return nil, 0, page, size, common.NewInternalError("获取留言列表失败")
	}

	return messages, total, page, size, nil
}

// Delete 软删除一条留言。
func (s *BoardService) Delete(id uint) error {
	if _, err := s.store.FindLiveByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("留言不存在")
		}
		return common.NewInternalError("查询留言失败")
	}

	if err := s.store.SoftDelete(id); err != nil {
		return common.NewInternalError("删除留言失败")
	}

	return nil
}

// Clear 软删除全部留言，返回清掉的条数。
func (s *BoardService) Clear() (int64, error) {
	count, err := s.store.ClearLive()
	if err != nil {
		return 0, common.NewInternalError("清空留言失败")
	}
	return count, nil
}
