package examgen

import (
	"fmt"
	"strings"
)

// The layout rules are fixed; only the header block varies with the config.
const formatRules = `YÊU CẦU QUAN TRỌNG VỀ ĐỊNH DẠNG:
1. TUYỆT ĐỐI KHÔNG ghi các dòng tiêu đề hành chính cấp trên như "UBND HUYỆN...", "PHÒNG GIÁO DỤC VÀ ĐÀO TẠO...".
2. Phần đầu đề thi và đáp án chỉ bắt đầu trực tiếp từ tên trường: "%s".
3. KHÔNG sử dụng các ký tự Markdown (*, #). Sử dụng văn bản hành chính thuần túy.`

const matrixRules = `YÊU CẦU CẤU TRÚC MA TRẬN (STRICT TEMPLATE):
Bảng ma trận phải có cấu trúc header tầng nấc như sau:
- Hàng 1: TT, Chủ đề/chương, Nội dung/đơn vị kiến thức, Mức độ đánh giá (colspan=12), Tổng (colspan=3), Tỉ lệ % điểm.
- Hàng 2 (dưới Mức độ đánh giá): TNKQ (colspan=9), Tự luận (colspan=3), Biết (dưới Tổng), Hiểu (dưới Tổng), Vận dụng (dưới Tổng).
- Hàng 3 (dưới TNKQ): Nhiều lựa chọn (colspan=3), Đúng-Sai (colspan=3), Trả lời ngắn (colspan=3), Biết (dưới Tự luận), Hiểu (dưới Tự luận), Vận dụng (dưới Tự luận).
- Hàng 4 (dưới cùng): Biết, Hiểu, Vận dụng (lặp lại cho từng cột Nhiều lựa chọn, Đúng-Sai, Trả lời ngắn).`

const summaryRules = `YÊU CẦU CÁC DÒNG TỔNG KẾT (CUỐI BẢNG MA TRẬN):
Bắt buộc phải có đủ 3 dòng cuối cùng:
1. Dòng: TỔNG SỐ CÂU (Thống kê số câu).
2. Dòng: TỔNG SỐ ĐIỂM (Thống kê điểm số, ngay dưới dòng Tổng số câu).
3. Dòng: TỈ LỆ % (Thống kê tỉ lệ %).`

const outputRules = `ĐỊNH DẠNG TRẢ VỀ PHẢI LÀ JSON CHUẨN với đúng 4 trường chuỗi: "matrix" (ma trận), "specTable" (bản đặc tả), "examPaper" (đề kiểm tra), "answerKey" (đáp án và hướng dẫn chấm).`

// BuildPrompt renders the instruction document for cfg. Rendering is
// deterministic: the same config always yields the same prompt.
func BuildPrompt(cfg ExamConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Bạn là chuyên gia khảo thí tại %s. Hãy soạn bộ hồ sơ đề kiểm tra chuẩn mực cho:\n", cfg.School)
	fmt.Fprintf(&b, "- Môn: %s, Lớp: %s\n", cfg.Subject, cfg.Grade)
	fmt.Fprintf(&b, "- Phạm vi: %s\n", scopeText(cfg))
	fmt.Fprintf(&b, "- Thời gian: %s, Thang điểm: %s\n", cfg.Duration, cfg.Scale)
	fmt.Fprintf(&b, "- Đơn vị: %s\n", cfg.School)

	b.WriteString("\n")
	fmt.Fprintf(&b, formatRules, strings.ToUpper(cfg.School))
	b.WriteString("\n\n")
	b.WriteString(matrixRules)
	b.WriteString("\n\n")
	b.WriteString(summaryRules)
	b.WriteString("\n\n")
	b.WriteString(outputRules)
	b.WriteString("\n")

	return b.String()
}

// scopeText is the topic itself for topic exams, the scope label otherwise.
func scopeText(cfg ExamConfig) string {
	if cfg.ScopeType == ScopeTopic {
		return cfg.SpecificTopic
	}
	return cfg.ScopeType.Label()
}
